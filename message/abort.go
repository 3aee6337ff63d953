package message

import (
	"io"

	"github.com/chainswap/swapcore/swapwire"
)

// Abort is an optional courtesy message either side may send before the
// lock transaction broadcasts, carrying an optional human-readable
// reason. It is never required for correctness. Session itself has no
// timeout; only an explicit Abort moves it to the aborted state.
type Abort struct {
	ErrorBody string
	HasBody   bool
}

var _ Message = (*Abort)(nil)

func (*Abort) MsgType() MessageType { return TypeAbort }

func NewAbort(reason string) *Abort {
	return &Abort{ErrorBody: reason, HasBody: reason != ""}
}

func (m *Abort) Encode(w io.Writer) error {
	return swapwire.WriteOptionalVarBytes(w, []byte(m.ErrorBody), m.HasBody)
}

func (m *Abort) Decode(r io.Reader) error {
	b, present, err := swapwire.ReadOptionalVarBytes(r)
	if err != nil {
		return err
	}
	m.HasBody = present
	if present {
		m.ErrorBody = string(b)
	}
	return nil
}
