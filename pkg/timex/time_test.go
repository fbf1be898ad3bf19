package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	// Create a fixed time
	// 创建一个固定时间
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	// Test Unix()
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}

	// Test UnixMilli()
	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}

	// Test UnixMicro()
	if tt.UnixMicro() != now.UnixMicro() {
		t.Errorf("UnixMicro() = %v, want %v", tt.UnixMicro(), now.UnixMicro())
	}

	// Test UnixNano()
	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("UnixNano() = %v, want %v", tt.UnixNano(), now.UnixNano())
	}
}

func TestTime_MarshalJSON(t *testing.T) {
	tt := Time(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	data, err := json.Marshal(tt)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-01-01 12:00:00"` {
		t.Errorf("MarshalJSON() = %s", data)
	}

	// 零值时间序列化为空字符串
	data, err = json.Marshal(Time{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `""` {
		t.Errorf("zero time MarshalJSON() = %s", data)
	}
}

func TestTime_UnmarshalJSON(t *testing.T) {
	var tt Time
	if err := json.Unmarshal([]byte(`"2024-01-01 12:00:00"`), &tt); err != nil {
		t.Fatal(err)
	}
	if tt.String() != "2024-01-01 12:00:00" {
		t.Errorf("UnmarshalJSON() = %v", tt.String())
	}

	// 空字符串反序列化为零值时间
	var zero Time
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatal(err)
	}
	if !zero.IsZero() {
		t.Errorf("empty string should unmarshal to zero time, got %v", zero)
	}
}
