package mapview

import (
	"fmt"
	"log"
	"sync"
	"time"

	"usage-map-server/api/bookings"
	"usage-map-server/models"
)

// ViewMode selects between the colored map overlay and the tabular list.
type ViewMode string

const (
	ModeMap  ViewMode = "map"
	ModeList ViewMode = "list"
)

// Tooltip is the hover preview: a screen position plus the text to float
// next to the cursor.
type Tooltip struct {
	X    float64
	Y    float64
	Text string
}

// Controller owns the map view's interaction state: current date, view mode,
// hover, tooltip, selection, and the booking list with its derived
// aggregation. All state changes go through its methods; nothing outside
// mutates the fields. Safe for use from the poll goroutine and UI events
// concurrently.
type Controller struct {
	mu       sync.Mutex
	api      bookings.BookingsAPI
	hotspots []models.Hotspot

	date     string
	mode     ViewMode
	bookings []models.Booking
	agg      Aggregation
	hovered  string
	tooltip  *Tooltip
	selected string

	// fetch ordering guard: responses older than the last applied fetch
	// are discarded instead of overwriting fresher data
	fetchSeq   uint64
	appliedSeq uint64

	pollInterval time.Duration
	stopPoll     chan struct{}
}

// NewController creates a controller showing today's bookings in map mode.
// Hotspots are loaded once per session and never change afterwards.
func NewController(api bookings.BookingsAPI, hotspots []models.Hotspot) *Controller {
	return &Controller{
		api:      api,
		hotspots: hotspots,
		date:     time.Now().Format("2006-01-02"),
		mode:     ModeMap,
		agg:      Aggregate(nil),
	}
}

// Refresh fetches bookings for the current date and replaces the list and
// its aggregation. A failed fetch falls back to an empty list; the map just
// renders with zero intensity, no error surfaces to the user.
func (c *Controller) Refresh() {
	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	date := c.date
	c.mu.Unlock()

	got, err := c.api.GetBookings(date)
	if err != nil {
		log.Printf("[MapController] Fetch failed for %s: %v", date, err)
		got = nil
	}

	c.applyFetch(seq, got)
}

// applyFetch installs a fetch result unless a newer one already landed.
func (c *Controller) applyFetch(seq uint64, got []models.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.appliedSeq {
		log.Printf("[MapController] Discarding stale fetch (seq=%d, applied=%d)", seq, c.appliedSeq)
		return
	}
	c.appliedSeq = seq
	c.bookings = got
	c.agg = Aggregate(got)
}

// SetDate switches the displayed calendar date, re-fetches immediately, and
// restarts the poll timer. Hover and selection persist; a selected space may
// simply have no bookings on the new date.
func (c *Controller) SetDate(date string) {
	c.mu.Lock()
	c.date = date
	polling := c.stopPoll != nil
	interval := c.pollInterval
	c.mu.Unlock()

	if polling {
		c.StopPolling()
		c.StartPolling(interval)
	}
	c.Refresh()
}

// StartPolling re-fetches the current date at the given interval until
// StopPolling is called, keeping the view live while the page is open.
func (c *Controller) StartPolling(interval time.Duration) {
	c.mu.Lock()
	if c.stopPoll != nil {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.stopPoll = stop
	c.pollInterval = interval
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Refresh()
			case <-stop:
				return
			}
		}
	}()
}

// StopPolling cancels the poll timer. Idempotent.
func (c *Controller) StopPolling() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopPoll != nil {
		close(c.stopPoll)
		c.stopPoll = nil
	}
}

// HoverEnter marks a hotspot as hovered and positions its tooltip preview.
func (c *Controller) HoverEnter(spaceID string, x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hovered = spaceID
	c.tooltip = &Tooltip{X: x, Y: y, Text: c.previewTextLocked(spaceID)}
}

// HoverLeave clears the hover state and its tooltip.
func (c *Controller) HoverLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hovered = ""
	c.tooltip = nil
}

// Select marks a space as selected, driving the detail panel.
func (c *Controller) Select(spaceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = spaceID
}

// CloseDetails clears the selection.
func (c *Controller) CloseDetails() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = ""
}

// SetMode switches between map and list view. Hover and selection are kept;
// they just stop rendering while the list is shown.
func (c *Controller) SetMode(mode ViewMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
}

func (c *Controller) Date() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.date
}

func (c *Controller) Mode() ViewMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *Controller) Hovered() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hovered
}

func (c *Controller) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Tooltip returns the current tooltip, or nil. Tooltips only render in map
// mode; in list mode this returns nil even while a hover is active.
func (c *Controller) Tooltip() *Tooltip {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeMap || c.tooltip == nil {
		return nil
	}
	t := *c.tooltip
	return &t
}

// Aggregation returns the current derived view of the booking list.
func (c *Controller) Aggregation() Aggregation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.agg
}

// PreviewText builds the tooltip body for a space: its first booking's event
// and time range, plus a count of further bookings.
func (c *Controller) PreviewText(spaceID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previewTextLocked(spaceID)
}

func (c *Controller) previewTextLocked(spaceID string) string {
	rows := c.agg.BySpace[spaceID]
	if len(rows) == 0 {
		return spaceID + "\nNo bookings"
	}
	first := rows[0]
	more := ""
	if len(rows) > 1 {
		more = fmt.Sprintf(" (+%d more)", len(rows)-1)
	}
	return fmt.Sprintf("%s\n%s — %s–%s%s", spaceID, first.EventName, first.StartTime, first.EndTime, more)
}

// DetailLines builds the detail panel body for a space: one line per
// booking, or an explicit no-bookings message. Only rendered in map mode;
// callers in list mode get nil.
func (c *Controller) DetailLines(spaceID string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeMap {
		return nil
	}

	rows := c.agg.BySpace[spaceID]
	if len(rows) == 0 {
		return []string{spaceID, "No bookings for this date."}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, spaceID)
	for _, r := range rows {
		line := fmt.Sprintf("%s — %s to %s", r.EventName, r.StartTime, r.EndTime)
		if r.Owner != "" {
			line += " • " + r.Owner
		}
		if r.Notes != "" {
			line += " — " + r.Notes
		}
		lines = append(lines, line)
	}
	return lines
}

// OverlayColors computes the fill color for every hotspot from its booking
// count on the current date.
func (c *Controller) OverlayColors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	colors := make(map[string]string, len(c.hotspots))
	for _, h := range c.hotspots {
		colors[h.SpaceID] = ColorForCount(len(c.agg.BySpace[h.SpaceID]))
	}
	return colors
}
