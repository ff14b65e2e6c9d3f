package tradein

import "errors"

// ErrOutOfStep is returned for an intent that does not belong to the wizard's current step.
var ErrOutOfStep = errors.New("intent does not match the current step")

type Step int

const (
	StepSelectType Step = iota + 1
	StepSelectModel
	StepSelectCondition
	StepResult
)

// HandOff is where the result step sends the customer to finish the deal.
const HandOff = "tel:+79000000000"

// Wizard is the transient trade-in selection. The zero value is not valid; use NewWizard.
type Wizard struct {
	Step       Step       `json:"step"`
	DeviceType DeviceType `json:"device_type,omitempty"`
	Device     *Device    `json:"device,omitempty"`
	Condition  Condition  `json:"condition,omitempty"`
	Estimate   int64      `json:"estimate,omitempty"`
}

func NewWizard() Wizard {
	return Wizard{Step: StepSelectType}
}

type Intent interface {
	apply(w Wizard) (Wizard, error)
}

type SelectType struct{ Type DeviceType }

// SelectModel picks a device by its position in the type's model list.
type SelectModel struct{ Index int }

type SelectCondition struct{ Condition Condition }

type Back struct{}

// Apply runs one intent. Forward intents are accepted only on their own step and advance by
// exactly one; Back retreats by one and forgets the selection made on the step it leaves.
// On error w is returned unchanged.
func (w Wizard) Apply(i Intent) (Wizard, error) {
	if w.Step < StepSelectType || w.Step > StepResult {
		w = NewWizard()
	}
	next, err := i.apply(w)
	if err != nil {
		return w, err
	}
	return next, nil
}

func (i SelectType) apply(w Wizard) (Wizard, error) {
	if w.Step != StepSelectType {
		return w, ErrOutOfStep
	}
	if _, ok := devices[i.Type]; !ok {
		return w, ErrUnknownDeviceType
	}
	w.DeviceType = i.Type
	w.Step = StepSelectModel
	return w, nil
}

func (i SelectModel) apply(w Wizard) (Wizard, error) {
	if w.Step != StepSelectModel {
		return w, ErrOutOfStep
	}
	list := devices[w.DeviceType]
	if i.Index < 0 || i.Index >= len(list) {
		return w, ErrUnknownModel
	}
	d := list[i.Index]
	w.Device = &d
	w.Step = StepSelectCondition
	return w, nil
}

func (i SelectCondition) apply(w Wizard) (Wizard, error) {
	if w.Step != StepSelectCondition || w.Device == nil {
		return w, ErrOutOfStep
	}
	// wizard state round-trips through the client, so the price comes from the table
	d, ok := lookup(w.DeviceType, w.Device.Name)
	if !ok {
		return w, ErrUnknownModel
	}
	estimate, err := Estimate(d.BasePrice, i.Condition)
	if err != nil {
		return w, err
	}
	w.Device = &d
	w.Condition = i.Condition
	w.Estimate = estimate
	w.Step = StepResult
	return w, nil
}

func (Back) apply(w Wizard) (Wizard, error) {
	switch w.Step {
	case StepSelectModel:
		w.DeviceType = ""
	case StepSelectCondition:
		w.Device = nil
	case StepResult:
		w.Condition = ""
		w.Estimate = 0
	default:
		return w, nil
	}
	w.Step--
	return w, nil
}

func lookup(t DeviceType, name string) (Device, bool) {
	for _, d := range devices[t] {
		if d.Name == name {
			return d, true
		}
	}
	return Device{}, false
}
