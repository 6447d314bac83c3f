// resume/parser.go

package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

////////////////////////////////////////////////////////////////////////

// extractionPrompt instructs the model to return resume data in a fixed JSON
// shape. The model routinely ignores the "ONLY valid JSON" instruction and
// wraps the object in prose or code fences, which is what ExtractJSON corrects.
const extractionPrompt = `
Extract structured information from the following resume text.
Return ONLY valid JSON with no additional text, explanations, comments, or markdown formatting.

IMPORTANT INSTRUCTIONS:
- For experiences, if a company is mentioned (like "Kainos", "University of Birmingham"), use that as the company
- For university projects, use the university name as the company
- Extract any dates mentioned and format as YYYY-MM-DD (e.g., "2024-06-01" for June 2024, use 01 for day when only month/year given)
- If no specific dates are given for experiences, try to infer from education timeline or leave as null
- For ongoing activities, use null for end_date
- Include all technical skills mentioned; estimate proficiency as "Beginner", "Intermediate" or "Advanced" where the resume gives enough context, otherwise null
- For each experience, also list the skills used in that role under its "skills" key
- DO NOT include any comments (// or /* */) in the JSON output
- Return only pure, valid JSON that can be parsed directly

Use this exact JSON structure:
{
  "skills": [{"name": "skill", "proficiency": "Advanced or null", "source": "resume"}],
  "education": [{"institution": "name", "period": "dates"}],
  "experiences": [{"title": "job title", "company": "company name", "start_date": "YYYY-MM-DD or null", "end_date": "YYYY-MM-DD or null", "description": "description", "skills": [{"name": "skill", "proficiency": "Advanced or null"}]}]
}

Resume text:
%s
`

////////////////////////////////////////////////////////////////////////

// ErrSchemaMismatch is returned when the model produced syntactically valid
// JSON that does not match the requested resume shape. The parsed JSON is
// untrusted input: field presence and types are checked explicitly instead of
// letting type errors propagate downstream.
var ErrSchemaMismatch = errors.New("model output does not match expected resume schema")

// ParsedSkill is one skill reference extracted from the resume.
type ParsedSkill struct {
	Name        string  `json:"name"`
	Proficiency *string `json:"proficiency"`
	Source      string  `json:"source"`
}

// ParsedEducation is one education entry extracted from the resume.
type ParsedEducation struct {
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

// ParsedExperience is one experience entry with canonicalized dates.
type ParsedExperience struct {
	Title       string        `json:"title"`
	Company     string        `json:"company"`
	StartDate   *string       `json:"start_date"`
	EndDate     *string       `json:"end_date"`
	Description string        `json:"description"`
	Skills      []ParsedSkill `json:"skills"`
}

// ParsedResume is the normalized result of one parsing run.
type ParsedResume struct {
	Skills      []ParsedSkill      `json:"skills"`
	Education   []ParsedEducation  `json:"education"`
	Experiences []ParsedExperience `json:"experiences"`
}

////////////////////////////////////////////////////////////////////////

// Parser is the public contract for resume parsing. Using an interface lets
// the API layer swap in a stub during tests without a live model endpoint.
type Parser interface {
	// Parse takes extracted plain text and returns the structured resume data.
	Parse(ctx context.Context, text string) (*ParsedResume, error)
}

// LLMParser implements Parser by prompting a hosted language model and
// repairing its output into strict JSON.
type LLMParser struct {
	llmClient LLMClient
}

// NewLLMParser creates an LLMParser using the provided LLMClient (real or mock).
func NewLLMParser(llmClient LLMClient) *LLMParser {
	return &LLMParser{llmClient: llmClient}
}

// Parse runs the full pipeline on extracted resume text: one model call,
// response normalization, schema validation and date canonicalization.
// There is no retry; every failure is terminal for the request.
func (p *LLMParser) Parse(ctx context.Context, text string) (*ParsedResume, error) {
	prompt := fmt.Sprintf(extractionPrompt, text)

	rawOutput, err := p.llmClient.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("resume extraction call failed: %w", err)
	}

	jsonString := ExtractJSON(rawOutput)

	var parsed ParsedResume
	if err := json.Unmarshal([]byte(jsonString), &parsed); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: unexpected %s for field %q", ErrSchemaMismatch, typeErr.Value, typeErr.Field)
		}
		// Surface the extracted string alongside the parse error for diagnosis.
		return nil, fmt.Errorf("failed to parse model output: %w\nextracted JSON:\n%s", err, jsonString)
	}

	if err := validate(&parsed); err != nil {
		return nil, err
	}

	for i := range parsed.Experiences {
		parsed.Experiences[i].StartDate = CanonicalDate(parsed.Experiences[i].StartDate)
		parsed.Experiences[i].EndDate = CanonicalDate(parsed.Experiences[i].EndDate)
	}

	return &parsed, nil
}

////////////////////////////////////////////////////////////////////////
// Response normalization
////////////////////////////////////////////////////////////////////////

var (
	// fencedJSONRe matches a fenced code block with an optional language tag
	// and captures the innermost {...} content.
	fencedJSONRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(\\{.*?\\})\\s*```")

	// lineCommentRe matches //-style comments, which are invalid in JSON but
	// occasionally emitted by the model despite instructions.
	lineCommentRe = regexp.MustCompile(`(?m)//.*$`)
)

// ExtractJSON strips conversational and markdown wrapping from a raw model
// response, returning its best guess at the embedded JSON object. Each step
// is a fallback for the previous one:
//
//  1. trim surrounding whitespace
//  2. if a fenced code block is present, take its innermost {...} content,
//     tolerating a language tag on the opening fence line
//  3. if the string still does not start with '{', slice between the first
//     '{' and the last '}' inclusively
//  4. strip line-trailing // comment text
//
// If no brace pair exists at all, the string is returned as-is and the JSON
// parser's failure propagates to the caller.
func ExtractJSON(raw string) string {
	jsonString := strings.TrimSpace(raw)

	if strings.Contains(jsonString, "```") {
		if m := fencedJSONRe.FindStringSubmatch(jsonString); m != nil {
			jsonString = strings.TrimSpace(m[1])
		} else {
			// Fence markers without a clean {...} capture: take the fence body
			// and drop a language identifier on its first line if present.
			start := strings.Index(jsonString, "```")
			end := strings.LastIndex(jsonString, "```")
			if start != -1 && end != -1 && start < end {
				body := strings.TrimSpace(jsonString[start+3 : end])
				if nl := strings.Index(body, "\n"); nl != -1 && !strings.Contains(body[:nl], "{") {
					body = strings.TrimSpace(body[nl+1:])
				}
				jsonString = body
			}
		}
	}

	if !strings.HasPrefix(jsonString, "{") {
		first := strings.Index(jsonString, "{")
		last := strings.LastIndex(jsonString, "}")
		if first != -1 && last != -1 && first < last {
			jsonString = jsonString[first : last+1]
		}
	}

	return strings.TrimSpace(lineCommentRe.ReplaceAllString(jsonString, ""))
}

////////////////////////////////////////////////////////////////////////
// Schema validation
////////////////////////////////////////////////////////////////////////

// validProficiencies maps accepted spellings to the canonical enum value.
var validProficiencies = map[string]string{
	"beginner":     "Beginner",
	"intermediate": "Intermediate",
	"advanced":     "Advanced",
}

// validate checks required fields on the decoded resume and normalizes
// proficiency values. A proficiency outside the allowed set is nulled rather
// than rejected, since the model invents levels freely.
func validate(parsed *ParsedResume) error {
	for i, exp := range parsed.Experiences {
		if strings.TrimSpace(exp.Title) == "" {
			return fmt.Errorf("%w: experience %d has no title", ErrSchemaMismatch, i)
		}
		if strings.TrimSpace(exp.Company) == "" {
			return fmt.Errorf("%w: experience %d has no company", ErrSchemaMismatch, i)
		}
		normalizeProficiencies(parsed.Experiences[i].Skills)
	}
	for i, sk := range parsed.Skills {
		if strings.TrimSpace(sk.Name) == "" {
			return fmt.Errorf("%w: skill %d has no name", ErrSchemaMismatch, i)
		}
	}
	normalizeProficiencies(parsed.Skills)
	return nil
}

func normalizeProficiencies(skills []ParsedSkill) {
	for i, sk := range skills {
		if sk.Proficiency == nil {
			continue
		}
		canonical, ok := validProficiencies[strings.ToLower(strings.TrimSpace(*sk.Proficiency))]
		if !ok {
			skills[i].Proficiency = nil
			continue
		}
		skills[i].Proficiency = &canonical
	}
}
