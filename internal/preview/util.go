package preview

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
