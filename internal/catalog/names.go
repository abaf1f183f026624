// Package catalog holds the static data pools consumed read-only by the
// generators: names, project templates, the clothing catalog, gifts, and
// NPC phrase banks.
package catalog

// FemaleNames is the first-name pool for generated female NPCs.
var FemaleNames = []string{
	"Jisoo", "Minji", "Hana", "Yuna", "Sora", "Chaeyoung", "Dasom", "Eunji",
	"Mira", "Nari", "Sumin", "Haeun", "Yerin", "Bora", "Jiwoo", "Seulgi",
	"Ari", "Dana", "Hyejin", "Kyla", "Luna", "Mina", "Nayeon", "Rina",
	"Saya", "Taeyeon", "Wendy", "Yeji", "Ahin", "Binnie", "Chungha", "Doyeon",
	"Gahyeon", "Heejin", "Irene", "Jinsol", "Karina", "Lia", "Momo", "Ningning",
}

// MaleNames is the first-name pool for generated male NPCs.
var MaleNames = []string{
	"Minho", "Jaehyun", "Taeyong", "Hyunjin", "Seungmin", "Jimin", "Kai",
	"Wonwoo", "Doyoung", "Jungkook", "Felix", "San", "Yeosang", "Beomgyu",
	"Sunwoo", "Eric",
}

// TeamNames is the finite pool of unique team names. A name is taken out of
// circulation once a live team holds it.
var TeamNames = []string{
	"Neon Pulse", "Velvet Crush", "Starline", "Midnight Bloom", "Prism Heart",
	"Aurora Step", "Crystal Wave", "Moonrise Crew", "Electric Dawn",
	"Sugar Static", "Black Orchid", "Silver Noise", "Cherry Voltage",
	"Glass Feather", "Night Parade", "Solar Flair", "Echo Motion",
	"Lucid Drift", "Vivid Arrow", "Paper Crown", "Halo Drive", "Iron Petal",
	"Twilight Axis", "Candy Riot", "Nova Bloom", "Shadow Tempo",
	"Golden Hour", "Frost Lily", "Magnetic Youth", "Rose Quartz",
}
