package llm

import (
	"context"

	"github.com/google/generative-ai-go/genai"
)

// Tool names exposed to general-scope chat turns
const (
	ToolCreateCase          = "createCase"
	ToolCreateCalendarEvent = "createCalendarEvent"
	ToolCheckAvailability   = "checkCalendarAvailability"
	ToolListUpcomingEvents  = "listUpcomingEvents"
)

// ToolExecutor runs a tool call on behalf of the model and returns the
// structured result fed back into the conversation.
type ToolExecutor interface {
	Execute(ctx context.Context, name string, args map[string]any) (map[string]any, error)
}

// chatTools declares the function surface available to general-scope
// turns. Case-scoped turns never get tools attached.
func chatTools() []*genai.Tool {
	return []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        ToolCreateCase,
					Description: "Create a new case in the user's workspace from details discussed in the conversation or extracted from an uploaded document.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"userId":   {Type: genai.TypeString, Description: "User ID"},
							"caseName": {Type: genai.TypeString, Description: `Case name (e.g., "Petitioner vs. Respondent")`},
							"tags": {
								Type:        genai.TypeArray,
								Items:       &genai.Schema{Type: genai.TypeString},
								Description: "Relevant tags for the case",
							},
							"petitionerName":  {Type: genai.TypeString, Description: "Petitioner/complainant name"},
							"respondentName":  {Type: genai.TypeString, Description: "Respondent/accused name"},
							"caseNumber":      {Type: genai.TypeString, Description: "Case number if available"},
							"courtName":       {Type: genai.TypeString, Description: "Court name"},
							"caseType":        {Type: genai.TypeString, Description: "Type of case (Civil/Criminal/Family/etc.)"},
							"summary":         {Type: genai.TypeString, Description: "Brief case summary"},
							"nextHearingDate": {Type: genai.TypeString, Description: "Next hearing date in YYYY-MM-DD format"},
						},
						Required: []string{"userId", "caseName"},
					},
				},
				{
					Name:        ToolCreateCalendarEvent,
					Description: "Create an event in the user's legal calendar, such as a hearing, filing deadline, or client meeting.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"userId":      {Type: genai.TypeString, Description: "User ID"},
							"title":       {Type: genai.TypeString, Description: "Event title"},
							"date":        {Type: genai.TypeString, Description: "Event date in YYYY-MM-DD format"},
							"time":        {Type: genai.TypeString, Description: "Start time in HH:MM format (24-hour)"},
							"eventType":   {Type: genai.TypeString, Description: "One of: hearing, deadline, appointment, reminder"},
							"caseId":      {Type: genai.TypeString, Description: "Linked case ID if applicable"},
							"description": {Type: genai.TypeString, Description: "Event description"},
						},
						Required: []string{"userId", "title", "date"},
					},
				},
				{
					Name:        ToolCheckAvailability,
					Description: "Check whether a time slot on a given date is free of conflicting events.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"userId":    {Type: genai.TypeString, Description: "User ID"},
							"date":      {Type: genai.TypeString, Description: "Date to check in YYYY-MM-DD format"},
							"startTime": {Type: genai.TypeString, Description: "Start time in HH:MM format"},
							"endTime":   {Type: genai.TypeString, Description: "End time in HH:MM format"},
						},
						Required: []string{"userId", "date"},
					},
				},
				{
					Name:        ToolListUpcomingEvents,
					Description: "List the user's upcoming calendar events.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"userId": {Type: genai.TypeString, Description: "User ID"},
							"days":   {Type: genai.TypeInteger, Description: "Number of days to look ahead (default: 7)"},
						},
						Required: []string{"userId"},
					},
				},
			},
		},
	}
}
