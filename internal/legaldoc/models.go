package legaldoc

import "time"

// Answer is one entry of the drafting wizard's question/answer flow.
type Answer struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// Record associates a user's generation request with the resulting artifact.
// Created once per successful generation; the pipeline never updates or
// deletes it. When the deployment returns artifacts inline there is no URL,
// only the Inline flag.
type Record struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	UserInput string    `json:"userInput" bson:"userInput"`
	Answers   []Answer  `json:"answers" bson:"answers"`
	Country   string    `json:"country" bson:"country"`
	PDFURL    string    `json:"pdfUrl,omitempty" bson:"pdfUrl,omitempty"`
	Inline    bool      `json:"inline,omitempty" bson:"inline,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
