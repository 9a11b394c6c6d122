package resumeparse

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a career-transition assistant extracting structured data from the resumes of service members and veterans.

Rules:
- Extract only what the resume states or clearly implies. Never invent skills, dates, or credentials.
- Translate military jargon into civilian skill phrasing: "maintained convoy readiness" yields "fleet maintenance", not the MOS title.
- Record MOS/AFSC/rating codes separately in mos_codes; do not list them as skills.
- Sum years of experience across all positions, counting overlapping periods once. Round to the nearest half year.
- List each degree or certification as its own education record, keeping the original wording.
- Leave work_mode and location empty unless the resume states a preference.
- Output skills lowercased and deduplicated.`

// buildUserMessage frames the résumé text for extraction.
func buildUserMessage(resumeText string, hints []string) string {
	var b strings.Builder

	b.WriteString("Extract the candidate profile from this resume.\n")
	if len(hints) > 0 {
		fmt.Fprintf(&b, "The candidate has indicated these target fields: %s\n", strings.Join(hints, ", "))
	}
	b.WriteString("\n--- RESUME ---\n")
	b.WriteString(resumeText)
	b.WriteString("\n--- END RESUME ---")

	return b.String()
}
