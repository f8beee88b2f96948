package solver

var letterValues = [26]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, // a-m
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10, // n-z
}

// Score returns the Scrabble face value of word. Characters outside a-z score nothing.
func Score(word string) int {
	total := 0

	for i := 0; i < len(word); i++ {
		c := word[i] | 0x20
		if c >= 'a' && c <= 'z' {
			total += letterValues[c-'a']
		}
	}

	return total
}
