package catalog

// ProjectTemplate is a name/description pairing for a generated cover
// project. Numeric parameters (duration, cadence, costs) are rolled by the
// generator, not stored here.
type ProjectTemplate struct {
	Name        string
	Description string
	Style       StyleTag
}

// ProjectTemplates is the project-name library.
var ProjectTemplates = []ProjectTemplate{
	{Name: "Spring Comeback Cover", Description: "A bright title-track cover for the spring season.", Style: StyleFemale},
	{Name: "Dark Concept Showcase", Description: "A moody full-choreo cover with heavy formations.", Style: StyleMale},
	{Name: "Retro Revival Stage", Description: "A second-gen classic reworked for a modern stage.", Style: StyleFemale},
	{Name: "Duality Challenge", Description: "One song, two styles, back to back.", Style: StyleBoth},
	{Name: "Rookie Debut Tribute", Description: "A tribute cover of this month's hottest debut.", Style: StyleFemale},
	{Name: "Festival Warm-Up Set", Description: "A crowd-pleaser medley for an open-air stage.", Style: StyleBoth},
	{Name: "Rain Window Practice Film", Description: "A one-take practice-room film, no cuts.", Style: StyleFemale},
	{Name: "City Night Shoot", Description: "Street shoot at night, traffic lights as stage lights.", Style: StyleMale},
	{Name: "Mirror Room Session", Description: "A precision-first mirrored-choreo session.", Style: StyleMale},
	{Name: "Summer Bust Cover", Description: "A high-energy summer anthem cover.", Style: StyleFemale},
	{Name: "Winter Ballad Motion", Description: "A slow, controlled piece for the cold season.", Style: StyleFemale},
	{Name: "Anniversary Relay", Description: "A relay dance marking a fandom anniversary.", Style: StyleBoth},
	{Name: "B-Side Spotlight", Description: "An underrated b-side finally getting a stage.", Style: StyleFemale},
	{Name: "Axis Shift Project", Description: "A formation-heavy piece with constant center swaps.", Style: StyleMale},
	{Name: "First Snow Film", Description: "An outdoor film timed to the first snow.", Style: StyleFemale},
	{Name: "Hall Stage Invitation", Description: "A small-hall stage with a live audience.", Style: StyleMale},
	{Name: "Campus Flashmob", Description: "A surprise flashmob set on a university square.", Style: StyleBoth},
	{Name: "Subculture Crossover", Description: "A crossover piece mixing street and idol choreo.", Style: StyleMale},
	{Name: "Comeback Countdown", Description: "A cover released in the hours before a comeback.", Style: StyleMale},
	{Name: "Monochrome Concept", Description: "A black-and-white concept with strict lines.", Style: StyleMale},
}

// TemplatesByStyle filters the library by style tag.
func TemplatesByStyle(style StyleTag) []ProjectTemplate {
	out := make([]ProjectTemplate, 0, len(ProjectTemplates))
	for _, t := range ProjectTemplates {
		if t.Style == style {
			out = append(out, t)
		}
	}
	return out
}

// CollabProjectName renders a collab project title for an NPC partner name.
func CollabProjectName(partner string) string {
	return "Joint Stage with " + partner
}
