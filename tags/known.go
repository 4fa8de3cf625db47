// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tags

import "codello.dev/emv"

// Tags of data elements that are interpreted by this module.
var (
	ApplicationLabel         = emv.MustParseTag("50")
	ApplicationIdentifier    = emv.MustParseTag("4F")
	FCITemplate              = emv.MustParseTag("6F")
	DFName                   = emv.MustParseTag("84")
	FCIProprietaryTemplate   = emv.MustParseTag("A5")
	LanguagePreference       = emv.MustParseTag("5F2D")
	TransactionCurrencyCode  = emv.MustParseTag("5F2A")
	AmountAuthorised         = emv.MustParseTag("9F02")
	IssuerCodeTableIndex     = emv.MustParseTag("9F11")
	ApplicationPreferredName = emv.MustParseTag("9F12")
	PDOL                     = emv.MustParseTag("9F38")
	CDOL1                    = emv.MustParseTag("8C")
	CDOL2                    = emv.MustParseTag("8D")
	DDOL                     = emv.MustParseTag("9F49")
	SDATagList               = emv.MustParseTag("9F4A")
)
