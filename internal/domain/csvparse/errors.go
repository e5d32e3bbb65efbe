package csvparse

import "errors"

// ErrQuoteInText is returned by Encode for a text cell holding a quote
// character, which the tokenizer cannot read back.
var ErrQuoteInText = errors.New("text cell contains a quote character")
