package coach

// State is a step of the per-request lifecycle.
type State string

const (
	StateReceived             State = "RECEIVED"
	StateRouting              State = "ROUTING"
	StateAnsweringDestination State = "ANSWERING_DESTINATION"
	StateAnsweringDefault     State = "ANSWERING_DEFAULT"
	StateDone                 State = "DONE"
	StateFailed               State = "FAILED"
)

// --- UseCase Inputs ---

type AnswerInput struct {
	Text string
}

type RouteInput struct {
	Text string
}

// --- UseCase Outputs ---

type AnswerOutput struct {
	Text        string
	Destination string
	NextInput   string
}

type RouteOutput struct {
	Destination string
	NextInput   string
	Source      string
}

type Destination struct {
	Name        string
	Description string
}

type DestinationsOutput struct {
	Destinations []Destination
	Default      string
}
