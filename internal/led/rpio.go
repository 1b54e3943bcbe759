package led

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// PWM duty resolution for the activity line.
const pwmCycle = 255

// Pins maps the two LED legs to BCM pin numbers. The activity leg needs a
// hardware PWM pin (BCM 12, 13, 18 or 19).
type Pins struct {
	Idle     int
	Activity int
}

type rpioDriver struct {
	idle       rpio.Pin
	activity   rpio.Pin
	brightness uint32
	closed     bool
}

// Open memory-maps the BCM GPIO registers and configures the idle line as
// a plain output and the activity line as PWM at the given frequency.
// Both lines start cleared.
func Open(pins Pins, brightness uint32, pwmHz int) (Driver, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("cannot acquire GPIO: %w (run as root, or grant the user access to /dev/gpiomem via the gpio group)", err)
	}
	if brightness > pwmCycle {
		brightness = pwmCycle
	}
	d := &rpioDriver{
		idle:       rpio.Pin(pins.Idle),
		activity:   rpio.Pin(pins.Activity),
		brightness: brightness,
	}
	d.idle.Output()
	d.idle.Low()
	d.activity.Pwm()
	d.activity.Freq(pwmHz * pwmCycle)
	d.activity.DutyCycle(0, pwmCycle)
	return d, nil
}

func (d *rpioDriver) Idle() {
	d.activity.DutyCycle(0, pwmCycle)
	d.idle.High()
}

func (d *rpioDriver) Activity() {
	d.idle.Low()
	d.activity.DutyCycle(d.brightness, pwmCycle)
}

func (d *rpioDriver) Off() {
	d.idle.Low()
	d.activity.DutyCycle(0, pwmCycle)
}

func (d *rpioDriver) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.Off()
	rpio.Close()
}
