package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckField(t *testing.T) {
	options := []Option{{Value: "a"}, {Value: "b"}}

	tests := []struct {
		name  string
		field Field
		value Value
		msg   string
	}{
		{"optional empty", Field{Kind: KindText}, Text(""), ""},
		{"optional bad email", Field{Kind: KindEmail}, Text("nope"), ""},
		{"text ok", Field{Kind: KindText, Required: true}, Text("x"), ""},
		{"text blank", Field{Kind: KindText, Required: true}, Text(" \t"), MsgRequired},
		{"email ok", Field{Kind: KindEmail, Required: true}, Text(" x@y.com "), ""},
		{"email empty", Field{Kind: KindEmail, Required: true}, Text(""), MsgRequired},
		{"email no domain", Field{Kind: KindEmail, Required: true}, Text("x@"), MsgEmail},
		{"choice ok", Field{Kind: KindChoice, Required: true, Options: options}, Choice("a"), ""},
		{"choice unset", Field{Kind: KindChoice, Required: true, Options: options}, Choice(""), MsgChoice},
		{"choice foreign", Field{Kind: KindChoice, Required: true, Options: options}, Choice("z"), MsgChoice},
		{"multi ok", Field{Kind: KindMultiChoice, Required: true, Options: options}, Choices("a", "b"), ""},
		{"multi none", Field{Kind: KindMultiChoice, Required: true, Options: options}, Choices(), MsgMultiChoice},
		{"multi foreign", Field{Kind: KindMultiChoice, Required: true, Options: options}, Choices("a", "z"), MsgMultiChoice},
		{"tag with hint", Field{Kind: KindText, Required: true, Tag: "e164", Hint: "Use +81..."}, Text("0312345678"), "Use +81..."},
		{"tag passes", Field{Kind: KindText, Required: true, Tag: "e164"}, Text("+81312345678"), ""},
		{"tag without hint", Field{Kind: KindText, Required: true, Tag: "max=3"}, Text("abcd"), MsgInvalid},
		{"multi tag", Field{Kind: KindMultiChoice, Required: true, Options: options, Tag: "max=1"}, Choices("a", "b"), MsgInvalid},
		{"unknown kind", Field{Kind: "date", Required: true}, Text("x"), MsgInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := checkField(tt.field, tt.value)
			assert.Equal(t, tt.msg, msg)
			assert.Equal(t, tt.msg == "", ok)
		})
	}
}
