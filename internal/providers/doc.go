// Package providers contains the HTTP clients that talk to chat-completion
// endpoints.
//
// All providers implement the Chatter interface: one rendered prompt in, one
// reply string out. The wire format is the common chat-completions shape
// (messages, temperature, top_p, max_tokens). Rate limits and 5xx responses
// are retried with exponential backoff; auth failures are surfaced
// immediately and never retried.
package providers
