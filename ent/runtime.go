// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ekocak/quizforge/ent/llmcallevent"
	"github.com/ekocak/quizforge/ent/question"
	"github.com/ekocak/quizforge/ent/refinement"
	"github.com/ekocak/quizforge/ent/schema"
	"github.com/ekocak/quizforge/ent/session"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmcalleventFields := schema.LLMCallEvent{}.Fields()
	_ = llmcalleventFields
	// llmcalleventDescInputTokens is the schema descriptor for input_tokens field.
	llmcalleventDescInputTokens := llmcalleventFields[3].Descriptor()
	// llmcallevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcallevent.DefaultInputTokens = llmcalleventDescInputTokens.Default.(int)
	// llmcalleventDescOutputTokens is the schema descriptor for output_tokens field.
	llmcalleventDescOutputTokens := llmcalleventFields[4].Descriptor()
	// llmcallevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcallevent.DefaultOutputTokens = llmcalleventDescOutputTokens.Default.(int)
	// llmcalleventDescLatencyMs is the schema descriptor for latency_ms field.
	llmcalleventDescLatencyMs := llmcalleventFields[5].Descriptor()
	// llmcallevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmcallevent.DefaultLatencyMs = llmcalleventDescLatencyMs.Default.(int64)
	// llmcalleventDescErrorMessage is the schema descriptor for error_message field.
	llmcalleventDescErrorMessage := llmcalleventFields[7].Descriptor()
	// llmcallevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmcallevent.DefaultErrorMessage = llmcalleventDescErrorMessage.Default.(string)
	// llmcalleventDescRequestBody is the schema descriptor for request_body field.
	llmcalleventDescRequestBody := llmcalleventFields[8].Descriptor()
	// llmcallevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmcallevent.DefaultRequestBody = llmcalleventDescRequestBody.Default.(string)
	// llmcalleventDescResponseBody is the schema descriptor for response_body field.
	llmcalleventDescResponseBody := llmcalleventFields[9].Descriptor()
	// llmcallevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmcallevent.DefaultResponseBody = llmcalleventDescResponseBody.Default.(string)
	// llmcalleventDescTimestamp is the schema descriptor for timestamp field.
	llmcalleventDescTimestamp := llmcalleventFields[10].Descriptor()
	// llmcallevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmcallevent.DefaultTimestamp = llmcalleventDescTimestamp.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescAnswerIndex is the schema descriptor for answer_index field.
	questionDescAnswerIndex := questionFields[4].Descriptor()
	// question.DefaultAnswerIndex holds the default value on creation for the answer_index field.
	question.DefaultAnswerIndex = questionDescAnswerIndex.Default.(int)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[5].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
	// questionDescSampleAnswer is the schema descriptor for sample_answer field.
	questionDescSampleAnswer := questionFields[6].Descriptor()
	// question.DefaultSampleAnswer holds the default value on creation for the sample_answer field.
	question.DefaultSampleAnswer = questionDescSampleAnswer.Default.(string)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[7].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(string)
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[8].Descriptor()
	// question.DefaultTopic holds the default value on creation for the topic field.
	question.DefaultTopic = questionDescTopic.Default.(string)
	// questionDescConfidence is the schema descriptor for confidence field.
	questionDescConfidence := questionFields[9].Descriptor()
	// question.DefaultConfidence holds the default value on creation for the confidence field.
	question.DefaultConfidence = questionDescConfidence.Default.(float64)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[10].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	refinementFields := schema.Refinement{}.Fields()
	_ = refinementFields
	// refinementDescChangesMade is the schema descriptor for changes_made field.
	refinementDescChangesMade := refinementFields[1].Descriptor()
	// refinement.DefaultChangesMade holds the default value on creation for the changes_made field.
	refinement.DefaultChangesMade = refinementDescChangesMade.Default.(string)
	// refinementDescCreatedAt is the schema descriptor for created_at field.
	refinementDescCreatedAt := refinementFields[2].Descriptor()
	// refinement.DefaultCreatedAt holds the default value on creation for the created_at field.
	refinement.DefaultCreatedAt = refinementDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescSourceSummary is the schema descriptor for source_summary field.
	sessionDescSourceSummary := sessionFields[2].Descriptor()
	// session.DefaultSourceSummary holds the default value on creation for the source_summary field.
	session.DefaultSourceSummary = sessionDescSourceSummary.Default.(string)
	// sessionDescTargetLanguage is the schema descriptor for target_language field.
	sessionDescTargetLanguage := sessionFields[3].Descriptor()
	// session.DefaultTargetLanguage holds the default value on creation for the target_language field.
	session.DefaultTargetLanguage = sessionDescTargetLanguage.Default.(string)
	// sessionDescImageRef is the schema descriptor for image_ref field.
	sessionDescImageRef := sessionFields[4].Descriptor()
	// session.DefaultImageRef holds the default value on creation for the image_ref field.
	session.DefaultImageRef = sessionDescImageRef.Default.(string)
	// sessionDescModel is the schema descriptor for model field.
	sessionDescModel := sessionFields[5].Descriptor()
	// session.DefaultModel holds the default value on creation for the model field.
	session.DefaultModel = sessionDescModel.Default.(string)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[6].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
}
