package rib

// faceIndex maps FaceID to the set of entries holding at least one own
// route with that face (spec §3 invariant I4), giving beginRemoveFace
// O(affected) cost instead of a full table scan.
type faceIndex struct {
	byFace map[FaceID]map[*RibEntry]struct{}
}

func newFaceIndex() *faceIndex {
	return &faceIndex{byFace: make(map[FaceID]map[*RibEntry]struct{})}
}

func (fi *faceIndex) add(face FaceID, e *RibEntry) {
	set, ok := fi.byFace[face]
	if !ok {
		set = make(map[*RibEntry]struct{})
		fi.byFace[face] = set
	}
	set[e] = struct{}{}
}

func (fi *faceIndex) remove(face FaceID, e *RibEntry) {
	set, ok := fi.byFace[face]
	if !ok {
		return
	}
	delete(set, e)
	if len(set) == 0 {
		delete(fi.byFace, face)
	}
}

// entries returns the entries registered under face. Callers must not
// mutate the returned map.
func (fi *faceIndex) entries(face FaceID) map[*RibEntry]struct{} {
	return fi.byFace[face]
}

// faces returns every face currently present in the index.
func (fi *faceIndex) faces() []FaceID {
	out := make([]FaceID, 0, len(fi.byFace))
	for f := range fi.byFace {
		out = append(out, f)
	}
	return out
}
