package prompt

// Spec is one coaching persona: a routing name, the description the router
// sees, and a template with exactly one Placeholder.
type Spec struct {
	Name        string
	Description string
	Template    string
}

// Registry is the immutable, ordered set of Specs built at startup.
type Registry struct {
	specs []Spec
	index map[string]int
}
