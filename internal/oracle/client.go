// Package oracle holds the generative-AI client that personalised
// prescriptions would be drafted with. The client is built at startup from the
// configured API key; no screen calls it yet.
package oracle

import "strings"

// Model is the generative model the client targets.
const Model = "gemini-2.5-flash"

type Client struct {
	apiKey string
	model  string
}

// NewClient returns nil when apiKey is empty, which disables the oracle.
func NewClient(apiKey string) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	return &Client{apiKey: apiKey, model: Model}
}

// Enabled reports whether a key was configured. Safe on a nil client.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// String describes the client without leaking the key.
func (c *Client) String() string {
	if !c.Enabled() {
		return "oracle(disabled)"
	}
	return "oracle(" + c.model + ", key=…" + c.apiKey[max(0, len(c.apiKey)-4):] + ")"
}
