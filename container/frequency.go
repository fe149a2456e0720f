package container

// NumSymbols is the size of the lzip alphabet: every possible byte value.
const NumSymbols = 256

// UpdateFrequency tallies the occurrence of each byte in chunk into freq,
// which the caller accumulates across every chunk of the input.
func UpdateFrequency(chunk []byte, freq *[NumSymbols]uint64) {
	for _, b := range chunk {
		freq[b]++
	}
}
