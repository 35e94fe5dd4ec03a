// Package submission validates raw form submissions against a schema and
// normalizes the survivors into canonical records. Both operations are pure
// functions over in-memory data; a Schema can serve any number of concurrent
// submissions.
package submission

import "sort"

// RawSubmission maps field keys to the raw string values an adapter
// collected. Values may be empty; keys may be absent entirely.
type RawSubmission map[string]string

// Clone returns an independent copy of the submission.
func (s RawSubmission) Clone() RawSubmission {
	if s == nil {
		return nil
	}
	out := make(RawSubmission, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Record is the validated, normalized output of a successful submission:
// field key to trimmed non-empty value, containing exactly the input keys
// the submitter populated or that were required.
type Record map[string]string

// Keys returns the record keys in sorted order for deterministic encoding.
func (r Record) Keys() []string {
	if len(r) == 0 {
		return nil
	}
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
