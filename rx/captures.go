package rx

// normalizeCaptures turns an engine submatch location into a CaptureSet. The first pair is the whole match and is dropped. A pair of -1 is a group that did not participate.
func normalizeCaptures(text string, loc []int) CaptureSet {
	if len(loc) < 2 {
		return CaptureSet{}
	}

	caps := make(CaptureSet, len(loc)/2-1)
	for i := range caps {
		start, end := loc[2*(i+1)], loc[2*(i+1)+1]
		if start < 0 || end < 0 {
			continue
		}
		caps[i] = Group{Text: text[start:end], Matched: true}
	}
	return caps
}
