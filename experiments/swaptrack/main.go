package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/symgroup/symgroup"
)

type Result struct {
	Word           *symgroup.SwapSeq `json:"word"`
	Reduced        *symgroup.SwapSeq `json:"reduced"`
	OneLine        symgroup.OneLine  `json:"one_line"`
	Cycles         string            `json:"cycles"`
	Transpositions int               `json:"transpositions"`
	Sign           int               `json:"sign"`
}

func main() {
	var size int
	var numSwaps int
	var seed int64
	var cycles string
	var savePath string

	flag.IntVar(&size, "size", 12, "number of points to track")
	flag.IntVar(&numSwaps, "swaps", 1000, "number of random swaps to apply")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 uses a random seed)")
	flag.StringVar(&cycles, "cycles", "", "cycle notation to use instead of random swaps")
	flag.StringVar(&savePath, "save-path", "result.json", "path to save the tracked permutation")
	flag.Parse()

	if size < 2 || size > symgroup.MaxOneLineOrder {
		essentials.Die("size must be in [2, 255], got:", size)
	}

	var word *symgroup.SwapSeq
	if cycles != "" {
		var err error
		word, err = symgroup.ParseCycleNotation(cycles)
		essentials.Must(err)
	} else {
		if seed == 0 {
			seed = rand.Int63()
		}
		log.Printf("Sampling %d swaps with seed %d ...", numSwaps, seed)
		word = symgroup.RandomSwapSeq(rand.New(rand.NewSource(seed)), uint8(size), numSwaps)
	}

	tracked := symgroup.IdentityOneLine(uint8(size))
	for _, s := range word.Swaps() {
		tracked.ComposeSwapRight(s)
	}
	if !symgroup.Equal(tracked, word.Evaluate()) {
		essentials.Die("incremental tracking disagrees with evaluated word")
	}

	if tracked.Order() <= symgroup.MaxPerm64Order {
		packed := symgroup.IdentityPerm64(tracked.Order())
		for _, s := range word.Swaps() {
			packed = packed.Compose(symgroup.NewPerm64(s))
		}
		if !symgroup.Equal(packed, tracked) {
			essentials.Die("packed permutation disagrees with tracked permutation")
		}
		log.Printf("packed: %s", packed)
	}

	reduced := word.Clone()
	reduced.Reduce()
	if !symgroup.Equal(reduced.Evaluate(), tracked) {
		essentials.Die("reduced word changed the permutation")
	}
	log.Printf("word: length=%d reduced=%d minimum=%d", word.Len(), reduced.Len(),
		symgroup.TranspositionCount(tracked))
	log.Printf("cycles: %s", symgroup.CycleNotation(tracked))

	labels := make([]string, tracked.Order())
	for i := range labels {
		labels[i] = string(rune('a' + i%26))
	}
	log.Printf("arrangement: %s", strings.Join(symgroup.Permute(tracked, labels), ""))

	result := Result{
		Word:           word,
		Reduced:        reduced,
		OneLine:        tracked,
		Cycles:         symgroup.CycleNotation(tracked),
		Transpositions: symgroup.TranspositionCount(tracked),
		Sign:           symgroup.Sign(tracked),
	}
	data, err := json.Marshal(result)
	essentials.Must(err)
	essentials.Must(os.WriteFile(savePath+".tmp", data, 0644))
	essentials.Must(os.Rename(savePath+".tmp", savePath))
}
