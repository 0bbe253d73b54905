package str

func If(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
