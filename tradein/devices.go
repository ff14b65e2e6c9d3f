// Package tradein estimates what the store pays for a used device.
package tradein

import (
	"errors"
	"math"
)

var (
	ErrUnknownDeviceType = errors.New("unknown device type")
	ErrUnknownModel      = errors.New("unknown device model")
	ErrUnknownCondition  = errors.New("unknown condition")
)

type DeviceType string

const (
	DeviceIPhone DeviceType = "iphone"
	DeviceIPad   DeviceType = "ipad"
	DeviceMac    DeviceType = "mac"
	DeviceWatch  DeviceType = "watch"
)

var DeviceTypes = []DeviceType{DeviceIPhone, DeviceIPad, DeviceMac, DeviceWatch}

type Device struct {
	Name      string `json:"name"`
	BasePrice int64  `json:"base_price"`
	Image     string `json:"image"`
}

const imageBase = "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/"

var devices = map[DeviceType][]Device{
	DeviceIPhone: {
		{Name: "iPhone 15 Pro Max", BasePrice: 120000, Image: imageBase + "iphone-15-pro-finish-select-202309-6-1inch-naturaltitanium"},
		{Name: "iPhone 15 Pro", BasePrice: 100000, Image: imageBase + "iphone-15-pro-finish-select-202309-6-1inch-naturaltitanium"},
		{Name: "iPhone 15", BasePrice: 80000, Image: imageBase + "iphone-15-finish-select-202309-6-1inch-pink"},
		{Name: "iPhone 14 Pro Max", BasePrice: 90000, Image: imageBase + "iphone-14-pro-finish-select-202209-6-1inch-deeppurple"},
		{Name: "iPhone 14 Pro", BasePrice: 75000, Image: imageBase + "iphone-14-pro-finish-select-202209-6-1inch-deeppurple"},
		{Name: "iPhone 14", BasePrice: 60000, Image: imageBase + "iphone-14-finish-select-202209-6-1inch-purple"},
	},
	DeviceIPad: {
		{Name: "iPad Pro 12.9\" (M2)", BasePrice: 90000, Image: imageBase + "ipad-pro-12-select-wifi-spacegray-202210"},
		{Name: "iPad Pro 11\" (M2)", BasePrice: 70000, Image: imageBase + "ipad-pro-11-select-wifi-spacegray-202210"},
		{Name: "iPad Air (M1)", BasePrice: 50000, Image: imageBase + "ipad-air-select-202203-blue"},
	},
	DeviceMac: {
		{Name: "MacBook Pro 16\" (M2 Pro)", BasePrice: 200000, Image: imageBase + "mbp16-spaceblack-select-202310"},
		{Name: "MacBook Pro 14\" (M2 Pro)", BasePrice: 180000, Image: imageBase + "mbp14-spaceblack-select-202310"},
		{Name: "MacBook Air 15\" (M2)", BasePrice: 150000, Image: imageBase + "macbook-air-15-midnight-select-202306"},
	},
	DeviceWatch: {
		{Name: "Apple Watch Ultra 2", BasePrice: 80000, Image: imageBase + "watch-49-titanium-ultra2"},
		{Name: "Apple Watch Series 9", BasePrice: 35000, Image: imageBase + "watch-s9-gps-select-202309"},
	},
}

// Models returns a copy of the fixed model list for t.
func Models(t DeviceType) ([]Device, error) {
	list, ok := devices[t]
	if !ok {
		return nil, ErrUnknownDeviceType
	}
	out := make([]Device, len(list))
	copy(out, list)
	return out, nil
}

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

var multipliers = map[Condition]float64{
	ConditionExcellent: 1.0,
	ConditionGood:      0.9,
	ConditionFair:      0.75,
	ConditionPoor:      0.5,
}

var conditionLabels = map[Condition]string{
	ConditionExcellent: "Отличное состояние",
	ConditionGood:      "Хорошее состояние",
	ConditionFair:      "Удовлетворительное состояние",
	ConditionPoor:      "Плохое состояние",
}

func (c Condition) Multiplier() (float64, bool) {
	m, ok := multipliers[c]
	return m, ok
}

// Label is the display text; unknown conditions have none.
func (c Condition) Label() string { return conditionLabels[c] }

// Estimate is round(basePrice × multiplier), halves rounded away from zero.
func Estimate(basePrice int64, c Condition) (int64, error) {
	m, ok := c.Multiplier()
	if !ok {
		return 0, ErrUnknownCondition
	}
	return int64(math.Round(float64(basePrice) * m)), nil
}
