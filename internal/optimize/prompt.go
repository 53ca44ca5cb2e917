package optimize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-curator/internal/prompts"
	"github.com/jonathan/resume-curator/internal/types"
)

// buildOptimizePrompt constructs the rewriting prompt for a single bullet
func buildOptimizePrompt(bulletText string, jd *types.JobDescription, usedVerbs []string, maxChars int) string {
	var sb strings.Builder

	introTemplate := prompts.MustGet("optimization.json", "optimize-bullet-intro")
	sb.WriteString(prompts.Format(introTemplate, map[string]string{
		"BulletText": bulletText,
	}))

	sb.WriteString("Job context:\n")
	if len(jd.RequiredSkills) > 0 {
		sb.WriteString("- Required skills: ")
		sb.WriteString(strings.Join(jd.RequiredSkills, ", "))
		sb.WriteString("\n")
	}
	if len(jd.PreferredSkills) > 0 {
		sb.WriteString("- Preferred skills: ")
		sb.WriteString(strings.Join(jd.PreferredSkills, ", "))
		sb.WriteString("\n")
	}
	if len(jd.Keywords) > 0 {
		sb.WriteString("- Keywords: ")
		sb.WriteString(strings.Join(jd.Keywords, ", "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(prompts.MustGet("optimization.json", "optimize-bullet-preservation"))

	reqsTemplate := prompts.MustGet("optimization.json", "optimize-bullet-requirements")
	sb.WriteString(prompts.Format(reqsTemplate, map[string]string{
		"UsedVerbs": strings.Join(usedVerbs, ", "),
		"MaxChars":  fmt.Sprintf("%d", maxChars),
	}))

	return sb.String()
}

// parseBulletResponse extracts the rewritten text from an LLM response. The
// model is asked for {"text": ...} JSON but plain text comes back often enough
// to handle both.
func parseBulletResponse(responseText string) (string, error) {
	text := strings.TrimSpace(responseText)
	if text == "" {
		return "", fmt.Errorf("empty response")
	}

	var jsonResp struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(text), &jsonResp); err == nil && jsonResp.Text != "" {
		return strings.TrimSpace(jsonResp.Text), nil
	}

	return text, nil
}

// extractLeadingVerb extracts the first word (assumed to be a verb) from a
// bullet point
func extractLeadingVerb(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	parts := strings.SplitN(text, " ", 2)
	return strings.TrimSuffix(parts[0], ",")
}
