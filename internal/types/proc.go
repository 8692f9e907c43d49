package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// ProcInfo stores the signature of a procedure type.
type ProcInfo struct {
	Params []TypeID // Parameter types (in order)
	Result TypeID   // Return type, Void for proper procedures
}

// RegisterProc creates or finds a procedure type.
func (in *Interner) RegisterProc(params []TypeID, result TypeID) TypeID {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindProc || int(tt.Payload) >= len(in.procs) {
			continue
		}
		info := in.procs[tt.Payload]
		if info.Result == result && slices.Equal(info.Params, params) {
			return id
		}
	}
	in.procs = append(in.procs, ProcInfo{
		Params: slices.Clone(params),
		Result: result,
	})
	slot, err := safecast.Conv[uint32](len(in.procs) - 1)
	if err != nil {
		panic(fmt.Errorf("proc info overflow: %w", err))
	}
	return in.internRaw(Type{Kind: KindProc, Payload: slot})
}

// ProcInfo retrieves procedure signature metadata by TypeID.
func (in *Interner) ProcInfo(id TypeID) (*ProcInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindProc || tt.Payload == 0 || int(tt.Payload) >= len(in.procs) {
		return nil, false
	}
	return &in.procs[tt.Payload], true
}
