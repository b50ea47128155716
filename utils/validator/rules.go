package validator

import (
	"errors"
	"math"
	"regexp"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/guregu/null"
)

// Finite NaN・無限大でない数値であるかどうか
var Finite = vd.By(func(value interface{}) error {
	var f float64
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		f = v
	case *float64:
		if v == nil {
			return nil
		}
		f = *v
	case null.Float:
		if !v.Valid {
			return nil
		}
		f = v.Float64
	default:
		return errors.New("must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("must be a finite number")
	}
	return nil
})

// LatitudeRule 緯度バリデーションルール
var LatitudeRule = []vd.Rule{
	Finite,
	vd.Min(-90.0),
	vd.Max(90.0),
}

// LatitudeRuleRequired 緯度バリデーションルール with NotNil
var LatitudeRuleRequired = append([]vd.Rule{
	vd.NotNil,
}, LatitudeRule...)

// LongitudeRule 経度バリデーションルール
var LongitudeRule = []vd.Rule{
	Finite,
	vd.Min(-180.0),
	vd.Max(180.0),
}

// LongitudeRuleRequired 経度バリデーションルール with NotNil
var LongitudeRuleRequired = append([]vd.Rule{
	vd.NotNil,
}, LongitudeRule...)

// AccuracyRule 位置精度(メートル)バリデーションルール
var AccuracyRule = []vd.Rule{
	Finite,
	vd.Min(0.0),
}

// UserNameRule ユーザー名バリデーションルール
var UserNameRule = []vd.Rule{
	vd.Match(regexp.MustCompile(`^[a-zA-Z0-9_.@-]+$`)).Error("must contain [a-zA-Z0-9_.@-] only"),
	vd.RuneLength(1, 64),
}

// UserNameRuleRequired ユーザー名バリデーションルール with Required
var UserNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, UserNameRule...)

// RoleRuleRequired ロール名バリデーションルール with Required
var RoleRuleRequired = []vd.Rule{
	vd.Required,
	vd.RuneLength(1, 32),
}
