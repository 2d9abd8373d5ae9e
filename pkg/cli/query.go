package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
)

// Query runs a jq expression over any JSON-marshalable value and writes
// each result to w as a JSON line.
func Query(w io.Writer, v interface{}, expr string) error {
	q, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("parsing query %q: %w", expr, err)
	}

	// Round-trip through JSON so the query sees plain maps and slices
	// instead of Go structs.
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	iter := q.Run(doc)
	for {
		out, ok := iter.Next()
		if !ok {
			return nil
		}
		if qerr, isErr := out.(error); isErr {
			return fmt.Errorf("running query %q: %w", expr, qerr)
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
}
