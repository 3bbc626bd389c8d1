package pqtext

// parseBoolText accepts the database's boolean text conventions exactly:
// the empty string and the single characters 'f', 'F', '0' are false;
// 't', 'T', '1' are true; the whole words "true"/"TRUE" and
// "false"/"FALSE" are accepted but no other casing is ("True" fails).
func parseBoolText(s string) (bool, error) {
	switch len(s) {
	case 0:
		return false, nil
	case 1:
		switch s[0] {
		case 'f', 'F', '0':
			return false, nil
		case 't', 'T', '1':
			return true, nil
		}
	case 4:
		if s == "true" || s == "TRUE" {
			return true, nil
		}
	case 5:
		if s == "false" || s == "FALSE" {
			return false, nil
		}
	}
	return false, syntaxError("bool", s, "invalid boolean")
}

// renderBoolText emits the fixed lowercase spellings regardless of what
// casings parse accepts.
func renderBoolText(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
