package finders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cilisou/internal/model"
)

const javdbListPage = `<!DOCTYPE html>
<html><body><section><div>
<div class="movie-list h cols-4 vcols-8">
  <div>
    <a href="/v/abc" title="示例影片一">
      <div class="video-title"><strong>STARS-804</strong></div>
      <div class="meta">2024-05-01</div>
    </a>
  </div>
  <div>
    <a href="/v/def" title="示例影片二">
      <div class="video-title"><strong>STARS-805</strong></div>
      <div class="meta">2024-04-01</div>
    </a>
  </div>
</div>
</div></section></body></html>`

const javdbPreviewPage = `<!DOCTYPE html>
<html><body><section><div>
<div class="video-detail">
  <h2><strong class="current-title">示例影片一</strong></h2>
  <div>简介</div>
  <div>
    <div>
      <article>
        <div>
          <div>
            <a href="#"><img src="https://img.example.com/s1.jpg"></a>
            <a href="#"><img src="https://img.example.com/s2.jpg"></a>
          </div>
        </div>
      </article>
    </div>
  </div>
</div>
<div id="magnets-content">
  <div>
    <div class="magnet-name column is-four-fifths">
      <a href="magnet:?xt=urn:btih:older&dn=x"><span class="meta">500MB, 1个文件</span></a>
    </div>
    <div class="date column"><span>2024-01-01</span></div>
  </div>
  <div>
    <div class="magnet-name column is-four-fifths">
      <a href="magnet:?xt=urn:btih:newer&dn=y"><span class="meta">1.5GB, 2个文件</span></a>
    </div>
    <div class="date column"><span>2024-03-01</span></div>
  </div>
</div>
</div></section></body></html>`

func newJavdbForTest(t *testing.T, page string) (*Javdb, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	f, err := NewJavdb(srv.Client())
	if err != nil {
		t.Fatalf("构造Javdb失败: %v", err)
	}
	f.baseURL = srv.URL

	return f, srv
}

func TestJavdbFind(t *testing.T) {
	f, srv := newJavdbForTest(t, javdbListPage)

	items, err := f.Find(context.Background(), "stars")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("结果数 = %d, 期望 2", len(items))
	}

	first := items[0]
	// 番号拼在标题前面
	if first.Title() != "STARS-804 示例影片一" {
		t.Errorf("标题 = %q", first.Title())
	}
	if first.Date().String() != "2024-05-01" {
		t.Errorf("日期 = %q", first.Date())
	}
	// 列表页没有体积信息
	if first.Size().Bytes() != 0 {
		t.Errorf("体积 = %d, 期望 0", first.Size().Bytes())
	}

	source, url := first.Preview().PreviewURL()
	if source != model.SourceJavdb {
		t.Errorf("句柄源 = %v, 期望 SourceJavdb", source)
	}
	if url != srv.URL+"/v/abc" {
		t.Errorf("预览地址 = %q", url)
	}
}

func TestJavdbLoadPreview(t *testing.T) {
	f, srv := newJavdbForTest(t, javdbPreviewPage)

	preview, err := f.LoadPreview(context.Background(), srv.URL+"/v/abc")
	if err != nil {
		t.Fatal(err)
	}

	if preview.Title() != "示例影片一" {
		t.Errorf("标题 = %q", preview.Title())
	}

	images := preview.Images()
	if len(images) != 2 || images[0] != "https://img.example.com/s1.jpg" {
		t.Errorf("图片 = %v", images)
	}

	bounds := preview.Bounds()
	if len(bounds) != 2 {
		t.Fatalf("磁力变体数 = %d, 期望 2", len(bounds))
	}
	// 新的变体排最前, 体积截掉逗号之后的文件数
	if bounds[0].Magnet() != "magnet:?xt=urn:btih:newer" {
		t.Errorf("首个磁力 = %q", bounds[0].Magnet())
	}
	if bounds[0].Date().String() != "2024-03-01" {
		t.Errorf("首个日期 = %q", bounds[0].Date())
	}
	if bounds[0].Size().String() != "1.50 GB" {
		t.Errorf("首个体积 = %q", bounds[0].Size())
	}
	if bounds[1].Magnet() != "magnet:?xt=urn:btih:older" {
		t.Errorf("次个磁力 = %q", bounds[1].Magnet())
	}
}
