package realtime

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/lib/pq"
)

func TestHubRoutesByTable(t *testing.T) {
	hub := NewHub()
	ann := hub.Subscribe("announcements")
	all := hub.Subscribe()
	defer hub.Unsubscribe(all)

	if n := hub.Publish(Change{Table: "announcements", Action: "update", ID: "a1"}); n != 2 {
		t.Errorf("delivered = %d, want 2", n)
	}
	if n := hub.Publish(Change{Table: "products", Action: "insert", ID: "p1"}); n != 1 {
		t.Errorf("delivered = %d, want 1", n)
	}

	got := <-ann.C
	if got.ID != "a1" {
		t.Errorf("announcement subscriber got %+v", got)
	}
	select {
	case extra := <-ann.C:
		t.Errorf("unexpected change %+v", extra)
	default:
	}

	hub.Unsubscribe(ann)
	if _, ok := <-ann.C; ok {
		t.Error("channel should be closed after Unsubscribe")
	}
	if hub.Count() != 1 {
		t.Errorf("Count() = %d, want 1", hub.Count())
	}
}

func TestHubDropsForSlowSubscriber(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("leads")
	defer hub.Unsubscribe(sub)

	for i := 0; i < hub.buffer+10; i++ {
		hub.Publish(Change{Table: "leads", Action: "insert"})
	}
	if len(sub.C) != hub.buffer {
		t.Errorf("buffered = %d, want %d", len(sub.C), hub.buffer)
	}
}

func TestResyncReachesEveryone(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe("products")
	b := hub.Subscribe("blog_posts", "leads")
	defer hub.Unsubscribe(a)
	defer hub.Unsubscribe(b)

	l := NewListener("", hub)
	l.handle(nil)

	if ch := <-a.C; ch.Action != ActionResync {
		t.Errorf("a got %+v", ch)
	}
	if ch := <-b.C; ch.Action != ActionResync {
		t.Errorf("b got %+v", ch)
	}
	if len(b.C) != 0 {
		t.Error("multi-table subscriber should receive resync once")
	}
}

func TestListenerHandleDecodes(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe("video_embeds")
	defer hub.Unsubscribe(sub)

	l := NewListener("", hub)
	l.handle(&pq.Notification{Channel: Channel, Extra: `{"table":"video_embeds","action":"DELETE","id":"v9"}`})
	l.handle(&pq.Notification{Channel: Channel, Extra: `not json`})

	ch := <-sub.C
	if ch.Action != "delete" || ch.ID != "v9" || ch.At.IsZero() {
		t.Errorf("got %+v", ch)
	}
	if len(sub.C) != 0 {
		t.Error("malformed payload should be dropped")
	}
}

func TestParseTables(t *testing.T) {
	h := NewHandler(NewHub(), []string{"announcements", "products"})

	got, err := h.ParseTables(" announcements ,products,")
	if err != nil || len(got) != 2 {
		t.Errorf("ParseTables() = %v, %v", got, err)
	}
	if got, _ := h.ParseTables(""); len(got) != 0 {
		t.Errorf("empty query should mean all tables, got %v", got)
	}
	if _, err := h.ParseTables("profiles"); err == nil {
		t.Error("expected error for table outside the allow list")
	}
}

func TestWriteEvent(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := writeEvent(w, Change{Table: "leads", Action: "insert", ID: "l1"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "event: insert\ndata: {\"table\":\"leads\"") || !strings.HasSuffix(out, "\n\n") {
		t.Errorf("unexpected frame %q", out)
	}
}
