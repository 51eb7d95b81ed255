package importer

// Phase identifies where in the pipeline an import currently is.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseParsing    Phase = "parsing"
	PhaseMapping    Phase = "mapping"
	PhasePersisting Phase = "persisting"
	PhaseDone       Phase = "done"
	PhaseFailed     Phase = "failed"
)

// Progress is a point-in-time snapshot of a running import. Only the most
// recent snapshot matters; consumers are not guaranteed a full history.
type Progress struct {
	Current int
	Total   int
	Phase   Phase
	Message string
}

// Progress returns the channel import progress is published on. The channel
// holds only the latest snapshot: the publisher replaces a pending value
// instead of blocking, so a slow (or absent) consumer never stalls mapping.
func (im *Importer) Progress() <-chan Progress {
	return im.progress
}

func (im *Importer) publish(p Progress) {
	select {
	case <-im.progress:
	default:
	}
	select {
	case im.progress <- p:
	default:
	}
}
