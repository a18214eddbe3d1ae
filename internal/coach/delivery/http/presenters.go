package http

import (
	"golf-coach/internal/coach"
)

// --- Request DTOs ---

// textReq is shared by every endpoint that takes a question.
type textReq struct {
	Text *string `json:"text"`
}

func (r textReq) validate() error {
	if r.Text == nil {
		return errMissingText
	}
	return nil
}

func (r textReq) toAnswerInput() coach.AnswerInput {
	return coach.AnswerInput{Text: *r.Text}
}

func (r textReq) toRouteInput() coach.RouteInput {
	return coach.RouteInput{Text: *r.Text}
}

// --- Response DTOs ---

// processResp is the legacy /process/ body.
type processResp struct {
	ProcessedText string `json:"processed_text"`
}

func (h *handler) newProcessResp(out coach.AnswerOutput) processResp {
	return processResp{ProcessedText: out.Text}
}

type answerResp struct {
	Answer      string `json:"answer"`
	Destination string `json:"destination"`
	NextInput   string `json:"next_input"`
}

func (h *handler) newAnswerResp(out coach.AnswerOutput) answerResp {
	return answerResp{
		Answer:      out.Text,
		Destination: out.Destination,
		NextInput:   out.NextInput,
	}
}

type routeResp struct {
	Destination string `json:"destination"`
	NextInput   string `json:"next_input"`
	Source      string `json:"source"`
}

func (h *handler) newRouteResp(out coach.RouteOutput) routeResp {
	return routeResp{
		Destination: out.Destination,
		NextInput:   out.NextInput,
		Source:      out.Source,
	}
}

type destinationResp struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type destinationsResp struct {
	Destinations []destinationResp `json:"destinations"`
	Default      string            `json:"default"`
}

func (h *handler) newDestinationsResp(out coach.DestinationsOutput) destinationsResp {
	items := make([]destinationResp, len(out.Destinations))
	for i, d := range out.Destinations {
		items[i] = destinationResp{Name: d.Name, Description: d.Description}
	}
	return destinationsResp{Destinations: items, Default: out.Default}
}
