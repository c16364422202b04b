package mapping

// StripComments removes CommentKey from node and from every object nested
// inside it, depth-first. Objects inside arrays are visited too. node may be
// an *Object, a map[string]any or a []any; other values are left untouched.
func StripComments(node any) {
	switch v := node.(type) {
	case *Object:
		for pair := v.Oldest(); pair != nil; pair = pair.Next() {
			StripComments(pair.Value)
		}
		v.Delete(CommentKey)
	case map[string]any:
		for _, child := range v {
			StripComments(child)
		}
		delete(v, CommentKey)
	case []any:
		for _, child := range v {
			StripComments(child)
		}
	}
}
