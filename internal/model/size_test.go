package model

import "testing"

func TestParseSizeRoundTrip(t *testing.T) {
	tests := []struct {
		unit  string
		bytes uint64
	}{
		{"B", 1},
		{"KB", 1024},
		{"MB", 1024 * 1024},
		{"GB", 1024 * 1024 * 1024},
		{"TB", 1024 * 1024 * 1024 * 1024},
	}

	for _, tc := range tests {
		t.Run(tc.unit, func(t *testing.T) {
			size := ParseSize("1.00 " + tc.unit)
			if size.Bytes() != tc.bytes {
				t.Errorf("ParseSize(1.00 %s) = %d 字节, 期望 %d", tc.unit, size.Bytes(), tc.bytes)
			}

			want := "1.00 " + tc.unit
			if got := NewSize(tc.bytes).String(); got != want {
				t.Errorf("NewSize(%d).String() = %q, 期望 %q", tc.bytes, got, want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		bytes uint64
	}{
		{"小数GB", "1.5 GB", uint64(1.5 * 1024 * 1024 * 1024)},
		{"无空格", "512MB", 512 * 1024 * 1024},
		{"小写单位", "2 gb", 2 * 1024 * 1024 * 1024},
		{"未知单位归零", "5 XJ", 0},
		{"空串归零", "", 0},
		{"纯文本归零", "unknown", 0},
		{"无单位归零", "12345", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseSize(tc.input).Bytes(); got != tc.bytes {
				t.Errorf("ParseSize(%q) = %d, 期望 %d", tc.input, got, tc.bytes)
			}
		})
	}
}

func TestSizeOrdering(t *testing.T) {
	small := ParseSize("900.00 MB")
	big := ParseSize("1.00 GB")

	if !small.Less(big) {
		t.Errorf("900MB 应当小于 1GB")
	}
	if big.Less(small) {
		t.Errorf("1GB 不应小于 900MB")
	}
	if big.Less(big) {
		t.Errorf("相等体积不应互小")
	}
}

func TestFormatSizeLargeValue(t *testing.T) {
	// 超大数值落到TB档显示小数，而不是原始字节
	size := NewSize(3 * 1024 * 1024 * 1024 * 1024 / 2)
	if got := size.String(); got != "1.50 TB" {
		t.Errorf("String() = %q, 期望 %q", got, "1.50 TB")
	}
}
