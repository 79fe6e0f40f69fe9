package model

import (
	"encoding/json"
	"testing"
)

func TestSourceJSONRoundTrip(t *testing.T) {
	for _, source := range []Source{SourceU3C3, SourceJavdb, SourceMadou} {
		data, err := json.Marshal(source)
		if err != nil {
			t.Fatalf("序列化 %v 失败: %v", source, err)
		}

		var back Source
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("反序列化 %s 失败: %v", data, err)
		}
		if back != source {
			t.Errorf("往返后 %v 变成了 %v", source, back)
		}
	}
}

func TestSourceUnknownName(t *testing.T) {
	var source Source
	if err := json.Unmarshal([]byte(`"no-such-source"`), &source); err != nil {
		t.Fatalf("未知名称不应报错: %v", err)
	}
	if source != SourceUnknown {
		t.Errorf("未知名称应归为SourceUnknown, 得到 %v", source)
	}
}

func TestPreviewHandle(t *testing.T) {
	handle := PreviewHandle{Source: SourceJavdb, URL: "https://javdb.com/v/abc"}

	source, url := handle.PreviewURL()
	if source != SourceJavdb || url != "https://javdb.com/v/abc" {
		t.Errorf("PreviewURL() = (%v, %q)", source, url)
	}
}
