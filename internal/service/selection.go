package service

// ResolveSelection returns the effective sector selection.
//
// When selectAll is set the whole catalog is returned and explicit is ignored,
// whatever it contains. Otherwise explicit is returned as given, including an
// empty list or names that are not in the catalog. The result is always a new
// slice; neither input is modified.
func ResolveSelection(catalog []string, selectAll bool, explicit []string) []string {
	if selectAll {
		return append([]string{}, catalog...)
	}
	return append([]string{}, explicit...)
}
