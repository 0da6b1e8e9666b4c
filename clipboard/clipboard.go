// Package clipboard encodes and parses the copy/paste payload: a fixed
// literal prefix identifying the content kind, followed by the serialized
// ordered list of (id, node) pairs of the copied subset.
//
// Payloads are canonicalized with JCS (RFC 8785) so copying the same subset
// twice yields byte-identical text. Parsing validates the whole payload
// before returning; a malformed payload yields an error and no partial
// result.
package clipboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gowebpki/jcs"

	"github.com/verdelin/nodenet/graph"
)

// Prefix marks a payload as a node-list clipboard block.
const Prefix = "nodenet/nodes: "

var (
	// ErrBadPrefix indicates the payload does not carry the node prefix.
	ErrBadPrefix = errors.New("clipboard: payload prefix mismatch")

	// ErrMalformedPayload indicates the payload body failed to parse or
	// validate.
	ErrMalformedPayload = errors.New("clipboard: malformed payload")
)

// Pair is one copied node together with the id it carried in the payload.
// Payload ids are remapped to fresh ids on paste, never inserted as-is.
type Pair struct {
	ID   graph.NodeID `json:"id"`
	Node *graph.Node  `json:"node"`
}

// Encode serializes pairs into a clipboard payload.
func Encode(pairs []Pair) (string, error) {
	data, err := json.Marshal(pairs)
	if err != nil {
		return "", fmt.Errorf("clipboard: encoding nodes: %w", err)
	}
	canonical, err := jcs.Transform(data)
	if err != nil {
		return "", fmt.Errorf("clipboard: canonicalizing payload: %w", err)
	}
	return Prefix + string(canonical), nil
}

// Decode parses a clipboard payload back into its pairs.
func Decode(payload string) ([]Pair, error) {
	body, ok := strings.CutPrefix(payload, Prefix)
	if !ok {
		return nil, ErrBadPrefix
	}
	var pairs []Pair
	if err := json.Unmarshal([]byte(body), &pairs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	for i, p := range pairs {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: pair %d has no id", ErrMalformedPayload, i)
		}
		if p.Node == nil {
			return nil, fmt.Errorf("%w: pair %d has no node", ErrMalformedPayload, i)
		}
	}
	return pairs, nil
}
