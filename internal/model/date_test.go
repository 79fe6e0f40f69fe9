package model

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	date := ParseDate("2023-08-01", "2006-01-02")

	want := time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)
	if !date.Time().Equal(want) {
		t.Errorf("Time() = %v, 期望 %v", date.Time(), want)
	}
	if date.String() != "2023-08-01" {
		t.Errorf("String() = %q, 期望 %q", date.String(), "2023-08-01")
	}
}

func TestParseDateFailureIsNotFatal(t *testing.T) {
	date := ParseDate("not-a-date", "2006-01-02")

	if !date.Time().IsZero() {
		t.Errorf("解析失败应返回零值日期, 得到 %v", date.Time())
	}
}

func TestParseDateTime(t *testing.T) {
	date := ParseDateTime("2024-06-01 12:30:00", "2006-01-02 15:04:05")

	want := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	if !date.Time().Equal(want) {
		t.Errorf("Time() = %v, 期望 %v", date.Time(), want)
	}
	if date.String() != "2024-06-01 12:30:00" {
		t.Errorf("String() = %q, 期望 %q", date.String(), "2024-06-01 12:30:00")
	}
}

func TestParseDateTimeFailureIsNotFatal(t *testing.T) {
	date := ParseDateTime("垃圾输入", "2006-01-02 15:04:05")

	if !date.Time().IsZero() {
		t.Errorf("解析失败应返回零值日期, 得到 %v", date.Time())
	}
}

func TestDateOrdering(t *testing.T) {
	older := ParseDate("2023-01-01", "2006-01-02")
	newer := ParseDate("2024-06-01", "2006-01-02")

	if !older.Less(newer) {
		t.Errorf("2023-01-01 应当早于 2024-06-01")
	}
	if newer.Less(older) {
		t.Errorf("2024-06-01 不应早于 2023-01-01")
	}
}

func TestDateFromYMD(t *testing.T) {
	date := DateFromYMD(2024, time.May, 1)

	if date.String() != "2024-05-01" {
		t.Errorf("String() = %q, 期望 %q", date.String(), "2024-05-01")
	}
}
