package huffman

import (
	"bytes"
	"fmt"
	"testing"
)

func makeTestEncoder(t *testing.T) Encoder {
	t.Helper()
	var e Encoder
	if err := e.Init(6, []uint64{5, 9, 12, 13, 16, 45}, DefaultMaxCodeLen); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return e
}

func TestEncoder_SizeBySymbol(t *testing.T) {
	e := makeTestEncoder(t)

	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	actualSizes := e.SizeBySymbol()
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestEncoder_Encode(t *testing.T) {
	e := makeTestEncoder(t)

	type testRow struct {
		sym  Symbol
		size byte
		bits uint64
	}

	testData := [...]testRow{
		{sym: 0, size: 4, bits: 0x0e},
		{sym: 1, size: 4, bits: 0x0f},
		{sym: 2, size: 3, bits: 0x04},
		{sym: 3, size: 3, bits: 0x05},
		{sym: 4, size: 3, bits: 0x06},
		{sym: 5, size: 1, bits: 0x00},
	}
	for _, row := range testData {
		name := fmt.Sprintf("Symbol(%d)", row.sym)
		t.Run(name, func(t *testing.T) {
			hc := e.Encode(row.sym)
			if hc.Size != row.size {
				t.Errorf("expected size %d, got %d", row.size, hc.Size)
			}
			if hc.Bits != row.bits {
				t.Errorf("expected bits %016b, got %016b", row.bits, hc.Bits)
			}
		})
	}
}

func TestEncoder_MinMaxSize(t *testing.T) {
	e := makeTestEncoder(t)
	if e.MinSize() != 1 {
		t.Errorf("expected MinSize 1, got %d", e.MinSize())
	}
	if e.MaxSize() != 4 {
		t.Errorf("expected MaxSize 4, got %d", e.MaxSize())
	}
	if e.MaxSymbol() != 5 {
		t.Errorf("expected MaxSymbol 5, got %d", e.MaxSymbol())
	}
}

func TestEncoder_Dump(t *testing.T) {
	e := makeTestEncoder(t)

	var buf bytes.Buffer
	if _, err := e.Dump(&buf); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"MinSize() = 1",
		"MaxSize() = 4",
		"Encode(5) = \"0\"",
		"Encode(0) = \"1110\"",
	} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("Dump output missing %q:\n%s", want, out)
		}
	}
}

func TestEncoder_Init_ZeroSymbols(t *testing.T) {
	var e Encoder
	if err := e.Init(4, nil, DefaultMaxCodeLen); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	for sym := Symbol(0); sym < 4; sym++ {
		if hc := e.Encode(sym); hc.Size != 0 {
			t.Errorf("expected no code for symbol %d, got %s", sym, hc)
		}
	}
}

func TestEncoder_Init_OneSymbol(t *testing.T) {
	var e Encoder
	if err := e.Init(3, []uint64{0, 7, 0}, DefaultMaxCodeLen); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	hc := e.Encode(1)
	if hc.Size != 1 {
		t.Errorf("expected size 1, got %d", hc.Size)
	}
}

func TestEncoder_Init_RejectsBadMaxCodeLen(t *testing.T) {
	var e Encoder
	if err := e.Init(2, []uint64{1, 1}, 0); err == nil {
		t.Error("expected error for maxCodeLen == 0")
	}
	if err := e.Init(2, []uint64{1, 1}, MaxCodeLen+1); err == nil {
		t.Error("expected error for maxCodeLen > MaxCodeLen")
	}
}

func TestEncoder_Init_LengthLimited(t *testing.T) {
	// A Fibonacci-weighted frequency set drives the unconstrained tree past
	// any small cap, forcing the length-limiting procedure to run.
	freqs := []uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987, 1597}
	var e Encoder
	if err := e.Init(len(freqs), freqs, 8); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if e.MaxSize() > 8 {
		t.Errorf("expected MaxSize <= 8, got %d", e.MaxSize())
	}

	sizes := e.SizeBySymbol()
	var total float64
	for _, size := range sizes {
		if size == 0 {
			continue
		}
		total += 1.0 / float64(uint64(1)<<size)
	}
	if total > 1.0000001 {
		t.Errorf("Kraft inequality violated: sum = %v", total)
	}
}

func TestEncoder_Init_CodeTooLong(t *testing.T) {
	// A 1-bit cap leaves room for only two codewords; 300 present symbols
	// cannot fit, so Init must fail rather than silently produce an invalid
	// code.
	freqs := make([]uint64, 300)
	for i := range freqs {
		freqs[i] = 1
	}
	var e Encoder
	err := e.Init(len(freqs), freqs, 1)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}
