package check

import "regexp"

const (
	defaultMatchesPattern = "The string %s does not match the pattern %s"
	defaultInvalidPattern = "The pattern %s is not a valid regular expression"
)

// MatchesPattern returns input, or a KindArgument failure unless the whole of
// input matches pattern. A partial match is a failure. An invalid pattern is
// a KindArgument failure caused by the compile error.
func MatchesPattern(f ArgumentFactory, input, pattern string, msg ...Message) (string, error) {
	// The bare pattern must compile on its own: an unbalanced ')' would
	// otherwise close the anchoring group early.
	if _, err := regexp.Compile(pattern); err != nil {
		return "", f.ArgumentError(describeFunc(msg, func() string {
			return Format1(defaultInvalidPattern, pattern)
		}), err)
	}
	re := regexp.MustCompile(`\A(?:` + pattern + `)\z`)
	if !re.MatchString(input) {
		return "", f.ArgumentError(describeFunc(msg, func() string {
			return Format2(defaultMatchesPattern, input, pattern)
		}), nil)
	}
	return input, nil
}
