package bench

import "github.com/schollz/progressbar/v3"

// stepBar tracks the progress of one benchmark phase.
type stepBar struct {
	pb *progressbar.ProgressBar
}

func newStepBar(description string, total int) *stepBar {
	pb := progressbar.Default(int64(total), description)
	_ = pb.Set(0)
	return &stepBar{pb: pb}
}

func (b *stepBar) Inc() {
	_ = b.pb.Add(1)
}

// Done finishes and releases the bar so the next phase starts on a
// fresh line.
func (b *stepBar) Done() {
	_ = b.pb.Finish()
	_ = b.pb.Close()
}
