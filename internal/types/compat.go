package types

// compatRule decides compatibility for one (expected, actual) kind pair.
type compatRule func(in *Interner, expID, actID TypeID, exp, act Type) bool

// compatTable is the whole compatibility matrix, indexed [expected][actual].
// A nil entry means the pair is never compatible. Numeric widening is
// spelled out per ordered pair: int flows into float, never the reverse.
var compatTable [kindCount][kindCount]compatRule

func init() {
	accept := func(*Interner, TypeID, TypeID, Type, Type) bool { return true }

	compatTable[KindVoid][KindVoid] = accept
	compatTable[KindBool][KindBool] = accept
	compatTable[KindInt][KindInt] = accept
	compatTable[KindFloat][KindFloat] = accept
	compatTable[KindFloat][KindInt] = accept

	compatTable[KindArray][KindArray] = compatArrays
	compatTable[KindRecord][KindRecord] = compatRecords
	compatTable[KindProc][KindProc] = compatProcs

	for k := KindInvalid + 1; k < kindCount; k++ {
		compatTable[KindError][k] = accept
		compatTable[k][KindError] = accept
	}
}

// Compatible reports whether a value of type actual may be used where
// expected is required. It is a pure predicate: unknown IDs and unsupported
// pairs yield false.
func (in *Interner) Compatible(expected, actual TypeID) bool {
	exp, okExp := in.Lookup(expected)
	act, okAct := in.Lookup(actual)
	if !okExp || !okAct {
		return false
	}
	rule := compatTable[exp.Kind][act.Kind]
	if rule == nil {
		return false
	}
	return rule(in, expected, actual, exp, act)
}

func compatArrays(in *Interner, _, _ TypeID, exp, act Type) bool {
	return exp.Count == act.Count && in.Compatible(exp.Elem, act.Elem)
}

// Records are nominal: the declaration is the identity.
func compatRecords(_ *Interner, expID, actID TypeID, _, _ Type) bool {
	return expID == actID
}

func compatProcs(in *Interner, expID, actID TypeID, _, _ Type) bool {
	expFn, okExp := in.ProcInfo(expID)
	actFn, okAct := in.ProcInfo(actID)
	if !okExp || !okAct || len(expFn.Params) != len(actFn.Params) {
		return false
	}
	for i := range expFn.Params {
		if !in.Compatible(expFn.Params[i], actFn.Params[i]) {
			return false
		}
	}
	return in.Compatible(expFn.Result, actFn.Result)
}

// IsNumeric reports whether id is int or float. The error type is not
// numeric; callers that want cascade suppression test IsError first.
func (in *Interner) IsNumeric(id TypeID) bool {
	k := in.KindOf(id)
	return k == KindInt || k == KindFloat
}
