package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/smarthire/internal/types"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// knownSkills is the dictionary matched against resume text to populate
// profile skills. Matching is case-insensitive on word boundaries.
var knownSkills = []string{
	"Python", "Java", "Go", "JavaScript", "TypeScript", "C++", "SQL",
	"Machine Learning", "Deep Learning", "Data Analysis", "Data Engineering",
	"Kubernetes", "Docker", "AWS", "GCP", "Azure", "Terraform",
	"React", "Node.js", "Django", "Spring", "Testing", "Selenium",
	"Communication", "Leadership", "Project Management",
}

// BuildProfile derives a ResumeProfile from extracted resume text.
// It never fails: anything it cannot find falls back to the sentinel values
// so a session can always be constructed.
func BuildProfile(text string) *types.ResumeProfile {
	profile := types.EmptyProfile()
	profile.RawText = text

	if text == "" {
		return profile
	}

	if email := emailPattern.FindString(text); email != "" {
		profile.Email = email
	}

	profile.Name = guessName(text)
	profile.Skills = matchSkills(text)

	return profile
}

// guessName takes the first non-empty line that does not look like contact
// info or a section heading. Resumes usually lead with the candidate's name.
func guessName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if emailPattern.MatchString(line) || strings.ContainsAny(line, "@/") {
			continue
		}
		// Headings and addresses tend to be long or shouty
		if len(line) > 60 || line == strings.ToUpper(line) && len(line) > 20 {
			continue
		}
		if wordCount := len(strings.Fields(line)); wordCount > 5 {
			continue
		}
		return line
	}
	return ""
}

// matchSkills returns the known skills present in the text, deduplicated and
// sorted for stable output. Presence is a case-insensitive substring check
// padded to avoid matching inside longer words.
func matchSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]struct{})

	for _, skill := range knownSkills {
		if containsWord(lower, strings.ToLower(skill)) {
			found[skill] = struct{}{}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// containsWord reports whether needle appears in haystack bounded by
// non-letter characters on both sides.
func containsWord(haystack, needle string) bool {
	idx := 0
	for {
		pos := strings.Index(haystack[idx:], needle)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(needle)

		beforeOK := start == 0 || !isLetter(haystack[start-1])
		afterOK := end == len(haystack) || !isLetter(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
		if idx >= len(haystack) {
			return false
		}
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
