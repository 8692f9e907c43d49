package types

import "strings"

// Label returns a user-friendly label for a TypeID.
func Label(typesIn *Interner, id TypeID) string {
	return labelDepth(typesIn, id, 0)
}

func labelDepth(typesIn *Interner, id TypeID, depth int) string {
	if depth > 6 {
		return "..."
	}
	tt, ok := typesIn.Lookup(id)
	if !ok {
		return "?"
	}
	switch tt.Kind {
	case KindVoid, KindBool, KindInt, KindFloat:
		return tt.Kind.String()
	case KindError:
		return "<error>"
	case KindArray:
		return labelDepth(typesIn, tt.Elem, depth+1) + strings.Repeat("[]", int(tt.Count))
	case KindRecord:
		if info, ok := typesIn.RecordInfo(id); ok && info.Name != "" {
			return info.Name
		}
		return "record"
	case KindProc:
		info, ok := typesIn.ProcInfo(id)
		if !ok {
			return "procedure(?)"
		}
		params := make([]string, len(info.Params))
		for i, param := range info.Params {
			params[i] = labelDepth(typesIn, param, depth+1)
		}
		return "procedure(" + strings.Join(params, ", ") + "): " + labelDepth(typesIn, info.Result, depth+1)
	default:
		return "?"
	}
}
