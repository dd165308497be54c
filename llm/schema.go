package llm

import "github.com/google/generative-ai-go/genai"

// chatResponseSchema constrains case-scoped turns to the canonical
// response shape so the output needs no repair downstream.
var chatResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"response": {Type: genai.TypeString, Description: "The assistant's reply in markdown"},
		"citations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title": {Type: genai.TypeString},
					"url":   {Type: genai.TypeString},
				},
				Required: []string{"title"},
			},
		},
		"suggestions": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "2-3 follow-up questions or actions",
		},
	},
	Required: []string{"response", "suggestions"},
}

// CaseExtractionSchema constrains document analysis output to the
// structured case fields.
var CaseExtractionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"caseName":          {Type: genai.TypeString, Description: `Suggested case name (e.g., "Petitioner vs. Respondent")`},
		"petitionerName":    {Type: genai.TypeString, Description: "Petitioner/complainant name if found"},
		"respondentName":    {Type: genai.TypeString, Description: "Respondent/accused name if found"},
		"caseNumber":        {Type: genai.TypeString, Description: `Case number if found (e.g., "CRL.A. 123/2024")`},
		"courtName":         {Type: genai.TypeString, Description: "Court name if mentioned"},
		"judgeName":         {Type: genai.TypeString, Description: "Name of the judge if mentioned"},
		"petitionerCounsel": {Type: genai.TypeString, Description: "Petitioner's counsel/lawyer name"},
		"respondentCounsel": {Type: genai.TypeString, Description: "Respondent's counsel/lawyer name"},
		"caseType":          {Type: genai.TypeString, Description: "Type of case (Civil/Criminal/Family/etc.)"},
		"filingDate":        {Type: genai.TypeString, Description: "Date the case was filed (format YYYY-MM-DD)"},
		"nextHearingDate":   {Type: genai.TypeString, Description: "Next hearing date if mentioned (format YYYY-MM-DD)"},
		"summary":           {Type: genai.TypeString, Description: "Brief 2-3 sentence case summary"},
		"tags":              {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Relevant tags for the case"},
		"legalSections":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Legal sections involved"},
		"keyFacts":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Key facts of the case"},
	},
	Required: []string{"caseName", "summary", "tags", "legalSections", "keyFacts"},
}

// SuggestionSchema constrains the citation/rephrase suggestion output.
var SuggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggestion": {Type: genai.TypeString, Description: "The suggested citation or rephrased text"},
	},
	Required: []string{"suggestion"},
}

// TitleSchema constrains chat title generation output.
var TitleSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title": {Type: genai.TypeString, Description: "A short chat title, 3 to 6 words"},
	},
	Required: []string{"title"},
}
