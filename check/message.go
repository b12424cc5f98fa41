package check

import "fmt"

// Format returns template verbatim.
func Format(template string) string {
	return template
}

// Format1 formats template with a single argument.
func Format1(template string, a any) string {
	return fmt.Sprintf(template, a)
}

// Format2 formats template with two arguments.
func Format2(template string, a, b any) string {
	return fmt.Sprintf(template, a, b)
}

// Formatf formats template with any number of arguments. Without arguments
// the template is returned verbatim, so a literal '%' needs no escaping.
func Formatf(template string, args ...any) string {
	switch len(args) {
	case 0:
		return Format(template)
	case 1:
		return Format1(template, args[0])
	case 2:
		return Format2(template, args[0], args[1])
	default:
		return fmt.Sprintf(template, args...)
	}
}

// Message is a failure message whose arguments are formatted only when a
// check fails.
type Message struct {
	template string
	args     []any
	n        uint8
	a, b     Arg
}

// Msg returns a static message.
func Msg(text string) Message {
	return Message{template: text}
}

// Msgf returns a printf-style message. args are not formatted until the
// message is realized, but the call still builds the argument slice. Use
// Msg1 or Msg2 where that matters.
func Msgf(template string, args ...any) Message {
	return Message{template: template, args: args}
}

// Msg1 returns a template message with one typed argument. Nothing is
// boxed or allocated unless the message is realized.
//
//	validation.InclusiveBetween(1, 120, age, validation.Msg1("age %d is out of range", validation.Int(age)))
func Msg1(template string, a Arg) Message {
	return Message{template: template, n: 1, a: a}
}

// Msg2 is Msg1 with two typed arguments.
func Msg2(template string, a, b Arg) Message {
	return Message{template: template, n: 2, a: a, b: b}
}

// String realizes the message.
func (m Message) String() string {
	switch m.n {
	case 1:
		return Format1(m.template, m.a.value())
	case 2:
		return Format2(m.template, m.a.value(), m.b.value())
	default:
		return Formatf(m.template, m.args...)
	}
}

// values returns a fresh slice of the message arguments.
func (m Message) values() []any {
	switch m.n {
	case 1:
		return []any{m.a.value()}
	case 2:
		return []any{m.a.value(), m.b.value()}
	default:
		return append([]any(nil), m.args...)
	}
}

// describe realizes the first caller message or falls back to text.
// Checks accept at most one message; extra messages are ignored.
func describe(msg []Message, text string) string {
	if len(msg) > 0 {
		return msg[0].String()
	}
	return text
}

// describeFunc is describe with a lazily built fallback.
func describeFunc(msg []Message, fallback func() string) string {
	if len(msg) > 0 {
		return msg[0].String()
	}
	return fallback()
}
