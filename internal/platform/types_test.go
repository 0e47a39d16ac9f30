package platform

import "testing"

func TestScrollDirection_Delta(t *testing.T) {
	if got := ScrollDown.Delta(3); got != 3 {
		t.Errorf("ScrollDown.Delta(3) = %d", got)
	}
	if got := ScrollUp.Delta(3); got != -3 {
		t.Errorf("ScrollUp.Delta(3) = %d", got)
	}
}
