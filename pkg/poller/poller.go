// Package poller is the degrade-safe client fallback for the push channel:
// a fixed-interval refresh loop over the notification list and unread-count
// summary, with an out-of-band trigger for components that just performed a
// mutation and want fresh state now.
package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"reflect"
	"time"

	"designdesk/internal/entity"
)

const DefaultInterval = 5 * time.Second

// Update is one snapshot of the recipient's read-state. It is advisory: the
// store remains the only authority and every poll re-queries it.
type Update struct {
	Notifications []entity.Notification  `json:"notifications"`
	Counts        []entity.UnreadSummary `json:"counts"`
}

type Poller struct {
	baseURL  string
	userId   string
	interval time.Duration
	client   *http.Client
	onUpdate func(Update)

	refresh chan struct{}
	last    *Update
}

func New(baseURL, userId string, onUpdate func(Update)) *Poller {
	return &Poller{
		baseURL:  baseURL,
		userId:   userId,
		interval: DefaultInterval,
		client:   &http.Client{Timeout: 10 * time.Second},
		onUpdate: onUpdate,
		refresh:  make(chan struct{}, 1),
	}
}

// SetInterval overrides the tick period. Only valid before Run.
func (p *Poller) SetInterval(d time.Duration) {
	if d > 0 {
		p.interval = d
	}
}

// Refresh requests an immediate out-of-band poll. It never blocks; if a
// refresh is already pending the signal is dropped (the pending one covers it).
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Run polls until ctx is done. A failed poll is logged and skipped; the loop
// just waits for the next tick. Ticks are not coalesced against slow
// responses, which is safe because every fetch is a full re-read.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		case <-p.refresh:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	update, err := p.fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("poller: %v", err)
		}
		return
	}

	// Suppress the callback when nothing changed since the last delivery.
	if p.last != nil && reflect.DeepEqual(*p.last, update) {
		return
	}
	p.last = &update
	if p.onUpdate != nil {
		p.onUpdate(update)
	}
}

func (p *Poller) fetch(ctx context.Context) (Update, error) {
	var update Update

	var notificationsBody struct {
		Notifications []entity.Notification `json:"notifications"`
	}
	if err := p.getJSON(ctx, "/notifications", &notificationsBody); err != nil {
		return Update{}, err
	}
	update.Notifications = notificationsBody.Notifications

	var countsBody struct {
		Counts []entity.UnreadSummary `json:"counts"`
	}
	if err := p.getJSON(ctx, "/messages/individual/counts", &countsBody); err != nil {
		return Update{}, err
	}
	update.Counts = countsBody.Counts

	return update, nil
}

func (p *Poller) getJSON(ctx context.Context, path string, out any) error {
	endpoint := p.baseURL + path + "?userId=" + url.QueryEscape(p.userId)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
