package bot

import (
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// presenceRotator cycles the bot's displayed status message on a fixed
// timer. The cursor grows without bound; the modulo is applied at read time.
type presenceRotator struct {
	texts    []string
	statuses []string
	cursor   int
	interval time.Duration
	stop     chan struct{}
}

func newPresenceRotator(interval time.Duration) *presenceRotator {
	return &presenceRotator{
		texts: []string{
			"🛠️ Maintaining systems",
			"🎨 Designing new features",
			"⚡ Optimizing performance",
			"💰 Counting everyone's coins",
		},
		statuses: []string{
			string(discordgo.StatusDoNotDisturb),
			string(discordgo.StatusIdle),
		},
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// next returns the upcoming text/status pair and advances the cursor.
func (r *presenceRotator) next() (text, status string) {
	text = r.texts[r.cursor%len(r.texts)]
	status = r.statuses[r.cursor%len(r.statuses)]
	r.cursor++
	return text, status
}

// run pushes the first presence immediately, then rotates on each tick
// until Stop is called.
func (r *presenceRotator) run(s *discordgo.Session) {
	r.apply(s)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.apply(s)
		case <-r.stop:
			return
		}
	}
}

func (r *presenceRotator) apply(s *discordgo.Session) {
	text, status := r.next()

	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: status,
		Activities: []*discordgo.Activity{
			{
				Name:  text,
				Type:  discordgo.ActivityTypeCustom,
				State: text,
			},
		},
	})
	if err != nil {
		log.Errorf("Error updating presence: %v", err)
		return
	}
	log.Infof("Presence updated to: %s", text)
}

// Stop halts the rotation. Safe to call once.
func (r *presenceRotator) Stop() {
	close(r.stop)
}
