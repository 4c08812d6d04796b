package v2g

import (
	"fmt"

	Text "github.com/linkdotnet/golang-stringbuilder"
)

// String renders a one-line summary of whichever Body branch is
// flagged, for cmd/exidump and for test failure messages. It does not
// attempt a full field dump — just enough to tell decoded records
// apart at a glance.
func (v *BodyType) String() string {
	sb := Text.NewStringBuilderFromString("")
	for _, br := range v.branches() {
		if br.IsUsed != nil && br.IsUsed() {
			sb.Append(br.Name)
		}
	}
	if sb.Len() == 0 {
		sb.Append("(empty)")
	}
	return sb.ToString()
}

// String renders the session ID and selected body variant.
func (v *V2GMessageType) String() string {
	return fmt.Sprintf("V2G_Message{SessionID=%x Body=%s}",
		v.Header.SessionID[:v.Header.SessionIDLen], v.Body.String())
}
