package check

import "github.com/google/uuid"

const defaultUUID = "The validated string is not a valid UUID: %s"

// UUID returns s, or a KindArgument failure caused by the parse error when s
// is not a valid UUID.
func UUID(f ArgumentFactory, s string, msg ...Message) (string, error) {
	if err := uuid.Validate(s); err != nil {
		return "", f.ArgumentError(describeFunc(msg, func() string {
			return Format1(defaultUUID, s)
		}), err)
	}
	return s, nil
}
