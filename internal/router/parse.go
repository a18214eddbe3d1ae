package router

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

var (
	fencePattern       = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")
	destinationPattern = regexp.MustCompile(`"destination"\s*:\s*("(?:[^"\\]|\\.)*")`)
	nextInputsPattern  = regexp.MustCompile(`"next_inputs"\s*:\s*("(?:[^"\\]|\\.)*")`)
)

// parse tries each strategy in order; the first one that yields a
// non-empty destination wins.
func parse(text string) (rawDecision, Source, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return rawDecision{}, SourceFallback, false
	}

	if d, ok := decodeJSON(trimmed); ok {
		return d, SourceStrict, true
	}

	candidates := extractCandidates(trimmed)
	for _, c := range candidates {
		if d, ok := decodeJSON(c); ok {
			return d, SourceFenced, true
		}
	}

	for _, c := range candidates {
		if d, ok := decodeRepaired(c); ok {
			return d, SourceRepaired, true
		}
	}

	for _, c := range candidates {
		if d, ok := decodeHJSON(c); ok {
			return d, SourceHJSON, true
		}
	}

	if d, ok := extractFields(trimmed); ok {
		return d, SourceRegex, true
	}

	return rawDecision{}, SourceFallback, false
}

// extractCandidates returns object-looking spans: fenced block bodies first,
// then the outermost brace span, then the whole text.
func extractCandidates(text string) []string {
	var out []string
	seen := map[string]bool{}
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] || !strings.Contains(s, "{") {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, m := range fencePattern.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start >= 0 && end > start {
		add(text[start : end+1])
	}
	add(text)
	return out
}

func decodeJSON(s string) (rawDecision, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return rawDecision{}, false
	}
	return fromObject(obj)
}

func decodeRepaired(s string) (rawDecision, bool) {
	repaired, err := jsonrepair.RepairJSON(s)
	if err != nil {
		return rawDecision{}, false
	}
	return decodeJSON(repaired)
}

func decodeHJSON(s string) (rawDecision, bool) {
	var obj map[string]any
	if err := hjson.Unmarshal([]byte(s), &obj); err != nil {
		return rawDecision{}, false
	}
	return fromObject(obj)
}

func fromObject(obj map[string]any) (rawDecision, bool) {
	dest, _ := obj["destination"].(string)
	if strings.TrimSpace(dest) == "" {
		return rawDecision{}, false
	}
	return rawDecision{destination: dest, nextInputs: nextInputsValue(obj["next_inputs"])}, true
}

// nextInputsValue accepts a plain string or an {"input": "..."} object.
func nextInputsValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["input"].(string); ok {
			return s
		}
	}
	return ""
}

func extractFields(text string) (rawDecision, bool) {
	m := destinationPattern.FindStringSubmatch(text)
	if m == nil {
		return rawDecision{}, false
	}
	dest, err := strconv.Unquote(m[1])
	if err != nil || strings.TrimSpace(dest) == "" {
		return rawDecision{}, false
	}

	d := rawDecision{destination: dest}
	if m := nextInputsPattern.FindStringSubmatch(text); m != nil {
		if next, err := strconv.Unquote(m[1]); err == nil {
			d.nextInputs = next
		}
	}
	return d, true
}
