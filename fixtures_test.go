// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

// Tables below are indexed like binaryCases(5).
var (
	expectedRegime = []string{
		"", // 0
		"", "", // 1
		"0", "1", "0", "1", // 2
		"00", "01", "10", "11", "00", "11", "10", "01", // 3
		"000", "001", "01", "01", "10", "10", "110", "111", // 4
		"000", "111", "110", "10", "10", "01", "01", "001", // 4
		"0000", "0001", "001", "001", "01", "01", "01", "01", // 5
		"10", "10", "10", "10", "110", "110", "1110", "1111", // 5
		"0000", "1111", "1110", "110", "110", "10", "10", "10", // 5
		"10", "01", "01", "01", "01", "001", "001", "0001", // 5
	}

	expectedRegimeK = []int{
		0, // 0
		0, 0, // 1
		-1, 0, -1, 0, // 2
		-2, -1, 0, 1, -2, 1, 0, -1, // 3
		-3, -2, -1, -1, 0, 0, 1, 2, // 4
		-3, 2, 1, 0, 0, -1, -1, -2, // 4
		-4, -3, -2, -2, -1, -1, -1, -1, // 5
		0, 0, 0, 0, 1, 1, 2, 3, // 5
		-4, 3, 2, 1, 1, 0, 0, 0, // 5
		0, -1, -1, -1, -1, -2, -2, -3, // 5
	}

	expectedFractionES0 = []string{
		"", // 0
		"", "", // 1
		"", "", "", "", // 2
		"", "", "", "", "", "", "", "", // 3
		"", "", "0", "1", "0", "1", "", "", // 4
		"", "", "", "1", "0", "1", "0", "", // 4
		"", "", "0", "1", "00", "01", "10", "11", // 5
		"00", "01", "10", "11", "0", "1", "", "", // 5
		"", "", "", "1", "0", "11", "10", "01", // 5
		"00", "11", "10", "01", "00", "1", "0", "", // 5
	}

	expectedExponentES1 = []string{
		"", // 0
		"", "", // 1
		"", "", "", "", // 2
		"", "", "", "", "", "", "", "", // 3
		"", "", "0", "1", "0", "1", "", "", // 4
		"", "", "", "1", "0", "1", "0", "", // 4
		"", "", "0", "1", "0", "0", "1", "1", // 5
		"0", "0", "1", "1", "0", "1", "", "", // 5
		"", "", "", "1", "0", "1", "1", "0", // 5
		"0", "1", "1", "0", "0", "1", "0", "", // 5
	}

	expectedFractionES1 = []string{
		"", // 0
		"", "", // 1
		"", "", "", "", // 2
		"", "", "", "", "", "", "", "", // 3
		"", "", "", "", "", "", "", "", // 4
		"", "", "", "", "", "", "", "", // 4
		"", "", "", "", "0", "1", "0", "1", // 5
		"0", "1", "0", "1", "", "", "", "", // 5
		"", "", "", "", "", "1", "0", "1", // 5
		"0", "1", "0", "1", "0", "", "", "", // 5
	}

	expectedExponentES2 = []string{
		"", // 0
		"", "", // 1
		"", "", "", "", // 2
		"", "", "", "", "", "", "", "", // 3
		"", "", "0", "1", "0", "1", "", "", // 4
		"", "", "", "1", "0", "1", "0", "", // 4
		"", "", "0", "1", "00", "01", "10", "11", // 5
		"00", "01", "10", "11", "0", "1", "", "", // 5
		"", "", "", "1", "0", "11", "10", "01", // 5
		"00", "11", "10", "01", "00", "1", "0", "", // 5
	}

	expectedFractionES2 = []string{
		"", // 0
		"", "", // 1
		"", "", "", "", // 2
		"", "", "", "", "", "", "", "", // 3
		"", "", "", "", "", "", "", "", // 4
		"", "", "", "", "", "", "", "", // 4
		"", "", "", "", "", "", "", "", // 5
		"", "", "", "", "", "", "", "", // 5
		"", "", "", "", "", "", "", "", // 5
		"", "", "", "", "", "", "", "", // 5
	}

	expectedZero = []bool{
		false, // 0
		true, false, // 1
		true, false, false, false, // 2
		true, false, false, false, false, false, false, false, // 3
		true, false, false, false, false, false, false, false, // 4
		false, false, false, false, false, false, false, false, // 4
		true, false, false, false, false, false, false, false, // 5
		false, false, false, false, false, false, false, false, // 5
		false, false, false, false, false, false, false, false, // 5
		false, false, false, false, false, false, false, false, // 5
	}

	expectedInfinite = []bool{
		false, // 0
		false, true, // 1
		false, false, true, false, // 2
		false, false, false, false, true, false, false, false, // 3
		false, false, false, false, false, false, false, false, // 4
		true, false, false, false, false, false, false, false, // 4
		false, false, false, false, false, false, false, false, // 5
		false, false, false, false, false, false, false, false, // 5
		true, false, false, false, false, false, false, false, // 5
		false, false, false, false, false, false, false, false, // 5
	}

	expectedPositive = []bool{
		false, // 0
		true, false, // 1
		true, true, false, false, // 2
		true, true, true, true, false, false, false, false, // 3
		true, true, true, true, true, true, true, true, // 4
		false, false, false, false, false, false, false, false, // 4
		true, true, true, true, true, true, true, true, // 5
		true, true, true, true, true, true, true, true, // 5
		false, false, false, false, false, false, false, false, // 5
		false, false, false, false, false, false, false, false, // 5
	}

	expectedExact = []bool{
		true, // 0
		true, true, // 1
		true, true, true, true, // 2
		true, false, true, false, true, false, true, false, // 3
		true, false, true, false, true, false, true, false, // 4
		true, false, true, false, true, false, true, false, // 4
		true, false, true, false, true, false, true, false, // 5
		true, false, true, false, true, false, true, false, // 5
		true, false, true, false, true, false, true, false, // 5
		true, false, true, false, true, false, true, false, // 5
	}

	expectedES1Literal = [][4]string{
		{"", "", "", ""}, // 0
		{"0", "", "", ""}, {"1", "", "", ""}, // 1
		{"0", "0", "", ""}, {"0", "1", "", ""}, {"1", "0", "", ""}, {"1", "1", "", ""}, // 2
		{"0", "00", "", ""}, {"0", "01", "", ""}, {"0", "10", "", ""}, {"0", "11", "", ""},
		{"1", "00", "", ""}, {"1", "01", "", ""}, {"1", "10", "", ""}, {"1", "11", "", ""}, // 3
		{"0", "000", "", ""}, {"0", "001", "", ""}, {"0", "01", "0", ""}, {"0", "01", "1", ""},
		{"0", "10", "0", ""}, {"0", "10", "1", ""}, {"0", "110", "", ""}, {"0", "111", "", ""}, // 4
		{"1", "000", "", ""}, {"1", "001", "", ""}, {"1", "01", "0", ""}, {"1", "01", "1", ""},
		{"1", "10", "0", ""}, {"1", "10", "1", ""}, {"1", "110", "", ""}, {"1", "111", "", ""}, // 4
		{"0", "0000", "", ""}, {"0", "0001", "", ""}, {"0", "001", "0", ""}, {"0", "001", "1", ""},
		{"0", "01", "0", "0"}, {"0", "01", "0", "1"}, {"0", "01", "1", "0"}, {"0", "01", "1", "1"}, // 5
		{"0", "10", "0", "0"}, {"0", "10", "0", "1"}, {"0", "10", "1", "0"}, {"0", "10", "1", "1"},
		{"0", "110", "0", ""}, {"0", "110", "1", ""}, {"0", "1110", "", ""}, {"0", "1111", "", ""}, // 5
		{"1", "0000", "", ""}, {"1", "0001", "", ""}, {"1", "001", "0", ""}, {"1", "001", "1", ""},
		{"1", "01", "0", "0"}, {"1", "01", "0", "1"}, {"1", "01", "1", "0"}, {"1", "01", "1", "1"}, // 5
		{"1", "10", "0", "0"}, {"1", "10", "0", "1"}, {"1", "10", "1", "0"}, {"1", "10", "1", "1"},
		{"1", "110", "0", ""}, {"1", "110", "1", ""}, {"1", "1110", "", ""}, {"1", "1111", "", ""}, // 5
	}

	expectedES1Direct = [][4]string{
		{"", "", "", ""}, // 0
		{"0", "", "", ""}, {"1", "", "", ""}, // 1
		{"0", "0", "", ""}, {"0", "1", "", ""}, {"1", "0", "", ""}, {"1", "1", "", ""}, // 2
		{"0", "00", "", ""}, {"0", "01", "", ""}, {"0", "10", "", ""}, {"0", "11", "", ""},
		{"1", "00", "", ""}, {"1", "11", "", ""}, {"1", "10", "", ""}, {"1", "01", "", ""}, // 3
		{"0", "000", "", ""}, {"0", "001", "", ""}, {"0", "01", "0", ""}, {"0", "01", "1", ""},
		{"0", "10", "0", ""}, {"0", "10", "1", ""}, {"0", "110", "", ""}, {"0", "111", "", ""}, // 4
		{"1", "000", "", ""}, {"1", "111", "", ""}, {"1", "110", "", ""}, {"1", "10", "1", ""},
		{"1", "10", "0", ""}, {"1", "01", "1", ""}, {"1", "01", "0", ""}, {"1", "001", "", ""}, // 4
		{"0", "0000", "", ""}, {"0", "0001", "", ""}, {"0", "001", "0", ""}, {"0", "001", "1", ""},
		{"0", "01", "0", "0"}, {"0", "01", "0", "1"}, {"0", "01", "1", "0"}, {"0", "01", "1", "1"}, // 5
		{"0", "10", "0", "0"}, {"0", "10", "0", "1"}, {"0", "10", "1", "0"}, {"0", "10", "1", "1"},
		{"0", "110", "0", ""}, {"0", "110", "1", ""}, {"0", "1110", "", ""}, {"0", "1111", "", ""}, // 5
		{"1", "0000", "", ""}, {"1", "1111", "", ""}, {"1", "1110", "", ""}, {"1", "110", "1", ""},
		{"1", "110", "0", ""}, {"1", "10", "1", "1"}, {"1", "10", "1", "0"}, {"1", "10", "0", "1"}, // 5
		{"1", "10", "0", "0"}, {"1", "01", "1", "1"}, {"1", "01", "1", "0"}, {"1", "01", "0", "1"},
		{"1", "01", "0", "0"}, {"1", "001", "1", ""}, {"1", "001", "0", ""}, {"1", "0001", "", ""}, // 5
	}

	expectedES2Literal = [][4]string{
		{"", "", "", ""}, // 0
		{"0", "", "", ""}, {"1", "", "", ""}, // 1
		{"0", "0", "", ""}, {"0", "1", "", ""}, {"1", "0", "", ""}, {"1", "1", "", ""}, // 2
		{"0", "00", "", ""}, {"0", "01", "", ""}, {"0", "10", "", ""}, {"0", "11", "", ""},
		{"1", "00", "", ""}, {"1", "01", "", ""}, {"1", "10", "", ""}, {"1", "11", "", ""}, // 3
		{"0", "000", "", ""}, {"0", "001", "", ""}, {"0", "01", "0", ""}, {"0", "01", "1", ""},
		{"0", "10", "0", ""}, {"0", "10", "1", ""}, {"0", "110", "", ""}, {"0", "111", "", ""}, // 4
		{"1", "000", "", ""}, {"1", "001", "", ""}, {"1", "01", "0", ""}, {"1", "01", "1", ""},
		{"1", "10", "0", ""}, {"1", "10", "1", ""}, {"1", "110", "", ""}, {"1", "111", "", ""}, // 4
		{"0", "0000", "", ""}, {"0", "0001", "", ""}, {"0", "001", "0", ""}, {"0", "001", "1", ""},
		{"0", "01", "00", ""}, {"0", "01", "01", ""}, {"0", "01", "10", ""}, {"0", "01", "11", ""}, // 5
		{"0", "10", "00", ""}, {"0", "10", "01", ""}, {"0", "10", "10", ""}, {"0", "10", "11", ""},
		{"0", "110", "0", ""}, {"0", "110", "1", ""}, {"0", "1110", "", ""}, {"0", "1111", "", ""}, // 5
		{"1", "0000", "", ""}, {"1", "0001", "", ""}, {"1", "001", "0", ""}, {"1", "001", "1", ""},
		{"1", "01", "00", ""}, {"1", "01", "01", ""}, {"1", "01", "10", ""}, {"1", "01", "11", ""}, // 5
		{"1", "10", "00", ""}, {"1", "10", "01", ""}, {"1", "10", "10", ""}, {"1", "10", "11", ""},
		{"1", "110", "0", ""}, {"1", "110", "1", ""}, {"1", "1110", "", ""}, {"1", "1111", "", ""}, // 5
	}

	expectedES2Direct = [][4]string{
		{"", "", "", ""}, // 0
		{"0", "", "", ""}, {"1", "", "", ""}, // 1
		{"0", "0", "", ""}, {"0", "1", "", ""}, {"1", "0", "", ""}, {"1", "1", "", ""}, // 2
		{"0", "00", "", ""}, {"0", "01", "", ""}, {"0", "10", "", ""}, {"0", "11", "", ""},
		{"1", "00", "", ""}, {"1", "11", "", ""}, {"1", "10", "", ""}, {"1", "01", "", ""}, // 3
		{"0", "000", "", ""}, {"0", "001", "", ""}, {"0", "01", "0", ""}, {"0", "01", "1", ""},
		{"0", "10", "0", ""}, {"0", "10", "1", ""}, {"0", "110", "", ""}, {"0", "111", "", ""}, // 4
		{"1", "000", "", ""}, {"1", "111", "", ""}, {"1", "110", "", ""}, {"1", "10", "1", ""},
		{"1", "10", "0", ""}, {"1", "01", "1", ""}, {"1", "01", "0", ""}, {"1", "001", "", ""}, // 4
		{"0", "0000", "", ""}, {"0", "0001", "", ""}, {"0", "001", "0", ""}, {"0", "001", "1", ""},
		{"0", "01", "00", ""}, {"0", "01", "01", ""}, {"0", "01", "10", ""}, {"0", "01", "11", ""}, // 5
		{"0", "10", "00", ""}, {"0", "10", "01", ""}, {"0", "10", "10", ""}, {"0", "10", "11", ""},
		{"0", "110", "0", ""}, {"0", "110", "1", ""}, {"0", "1110", "", ""}, {"0", "1111", "", ""}, // 5
		{"1", "0000", "", ""}, {"1", "1111", "", ""}, {"1", "1110", "", ""}, {"1", "110", "1", ""},
		{"1", "110", "0", ""}, {"1", "10", "11", ""}, {"1", "10", "10", ""}, {"1", "10", "01", ""}, // 5
		{"1", "10", "00", ""}, {"1", "01", "11", ""}, {"1", "01", "10", ""}, {"1", "01", "01", ""},
		{"1", "01", "00", ""}, {"1", "001", "1", ""}, {"1", "001", "0", ""}, {"1", "0001", "", ""}, // 5
	}

	expectedES1Spaced = []string{
		"", // 0
		"0", "1", // 1
		"0 0", "0 1", "1 0", "1 1", // 2
		"0 00", "0 01", "0 10", "0 11", "1 00", "1 01", "1 10", "1 11", // 3
		"0 000", "0 001", "0 01 e0", "0 01 e1", "0 10 e0", "0 10 e1", "0 110", "0 111", // 4
		"1 000", "1 001", "1 01 e0", "1 01 e1", "1 10 e0", "1 10 e1", "1 110", "1 111", // 4
		"0 0000", "0 0001", "0 001 e0", "0 001 e1", "0 01 e0 f0", "0 01 e0 f1", "0 01 e1 f0", "0 01 e1 f1", // 5
		"0 10 e0 f0", "0 10 e0 f1", "0 10 e1 f0", "0 10 e1 f1", "0 110 e0", "0 110 e1", "0 1110", "0 1111", // 5
		"1 0000", "1 0001", "1 001 e0", "1 001 e1", "1 01 e0 f0", "1 01 e0 f1", "1 01 e1 f0", "1 01 e1 f1", // 5
		"1 10 e0 f0", "1 10 e0 f1", "1 10 e1 f0", "1 10 e1 f1", "1 110 e0", "1 110 e1", "1 1110", "1 1111", // 5
	}

	expectedES1SpacedDirect = []string{
		"", // 0
		"0", "1", // 1
		"0 0", "0 1", "1 0", "1 1", // 2
		"0 00", "0 01", "0 10", "0 11", "1 00", "1 11", "1 10", "1 01", // 3
		"0 000", "0 001", "0 01 e0", "0 01 e1", "0 10 e0", "0 10 e1", "0 110", "0 111", // 4
		"1 000", "1 111", "1 110", "1 10 e1", "1 10 e0", "1 01 e1", "1 01 e0", "1 001", // 4
		"0 0000", "0 0001", "0 001 e0", "0 001 e1", "0 01 e0 f0", "0 01 e0 f1", "0 01 e1 f0", "0 01 e1 f1", // 5
		"0 10 e0 f0", "0 10 e0 f1", "0 10 e1 f0", "0 10 e1 f1", "0 110 e0", "0 110 e1", "0 1110", "0 1111", // 5
		"1 0000", "1 1111", "1 1110", "1 110 e1", "1 110 e0", "1 10 e1 f1", "1 10 e1 f0", "1 10 e0 f1", // 5
		"1 10 e0 f0", "1 01 e1 f1", "1 01 e1 f0", "1 01 e0 f1", "1 01 e0 f0", "1 001 e1", "1 001 e0", "1 0001", // 5
	}

	expectedES2Spaced = []string{
		"", // 0
		"0", "1", // 1
		"0 0", "0 1", "1 0", "1 1", // 2
		"0 00", "0 01", "0 10", "0 11", "1 00", "1 01", "1 10", "1 11", // 3
		"0 000", "0 001", "0 01 e0", "0 01 e1", "0 10 e0", "0 10 e1", "0 110", "0 111", // 4
		"1 000", "1 001", "1 01 e0", "1 01 e1", "1 10 e0", "1 10 e1", "1 110", "1 111", // 4
		"0 0000", "0 0001", "0 001 e0", "0 001 e1", "0 01 e00", "0 01 e01", "0 01 e10", "0 01 e11", // 5
		"0 10 e00", "0 10 e01", "0 10 e10", "0 10 e11", "0 110 e0", "0 110 e1", "0 1110", "0 1111", // 5
		"1 0000", "1 0001", "1 001 e0", "1 001 e1", "1 01 e00", "1 01 e01", "1 01 e10", "1 01 e11", // 5
		"1 10 e00", "1 10 e01", "1 10 e10", "1 10 e11", "1 110 e0", "1 110 e1", "1 1110", "1 1111", // 5
	}

	expectedES2SpacedDirect = []string{
		"", // 0
		"0", "1", // 1
		"0 0", "0 1", "1 0", "1 1", // 2
		"0 00", "0 01", "0 10", "0 11", "1 00", "1 11", "1 10", "1 01", // 3
		"0 000", "0 001", "0 01 e0", "0 01 e1", "0 10 e0", "0 10 e1", "0 110", "0 111", // 4
		"1 000", "1 111", "1 110", "1 10 e1", "1 10 e0", "1 01 e1", "1 01 e0", "1 001", // 4
		"0 0000", "0 0001", "0 001 e0", "0 001 e1", "0 01 e00", "0 01 e01", "0 01 e10", "0 01 e11", // 5
		"0 10 e00", "0 10 e01", "0 10 e10", "0 10 e11", "0 110 e0", "0 110 e1", "0 1110", "0 1111", // 5
		"1 0000", "1 1111", "1 1110", "1 110 e1", "1 110 e0", "1 10 e11", "1 10 e10", "1 10 e01", // 5
		"1 10 e00", "1 01 e11", "1 01 e10", "1 01 e01", "1 01 e00", "1 001 e1", "1 001 e0", "1 0001", // 5
	}
)
