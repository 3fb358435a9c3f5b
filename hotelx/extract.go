package hotelx

import (
	"fmt"

	"github.com/kbukum/travelgate/errors"
	"github.com/kbukum/travelgate/mapping"
	"github.com/kbukum/travelgate/transport"
)

// resultAt pulls the operation's result node out of a decoded response.
// The hotelX envelope puts every result under data.hotelX.<operation>; a
// missing or non-object node is a contract violation, never a silent nil.
func resultAt(resp *transport.Response, operation string) (mapping.Object, error) {
	node := mapping.ObjectAt(resp.Data, "data", "hotelX", operation)
	if node == nil {
		return nil, errors.ContractViolation(
			fmt.Sprintf("response is missing data.hotelX.%s", operation))
	}
	return node, nil
}

// checkError inspects the result node's errors list. A non-empty list fails
// the call with the first entry's fields; an absent list means success. A
// present-but-malformed list is a contract violation.
func checkError(node mapping.Object) error {
	list, ok := mapping.SliceAt(node, "errors")
	if !ok {
		return errors.ContractViolation("errors field is not a list")
	}
	if len(list) == 0 {
		return nil
	}
	first, ok := list[0].(mapping.Object)
	if !ok {
		return errors.ContractViolation("errors list entry is not an object")
	}
	return errors.Provider(
		stringify(first["code"]),
		stringify(first["type"]),
		stringify(first["description"]),
	)
}

// stringify renders a provider error field, which is a string in the
// documented shape but numeric in some historical responses.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
