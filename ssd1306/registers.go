package ssd1306

// Controller commands. Data and command bytes are told apart by the
// control byte that starts every I2C write.
const (
	controlCommand = 0x00
	controlData    = 0x40

	setLowColumn       = 0x00
	setHighColumn      = 0x10
	memoryMode         = 0x20
	deactivateScroll   = 0x2E
	setStartLine       = 0x40
	setContrast        = 0x81
	setBrightness      = 0x82
	chargePump         = 0x8D
	segRemap           = 0xA0
	displayAllOnResume = 0xA4
	normalDisplay      = 0xA6
	invertDisplay      = 0xA7
	setMultiplex       = 0xA8
	displayOff         = 0xAE
	displayOn          = 0xAF
	setPageStart       = 0xB0
	comScanInc         = 0xC0
	comScanDec         = 0xC8
	setDisplayOffset   = 0xD3
	setDisplayClockDiv = 0xD5
	setPrecharge       = 0xD9
	setCOMPins         = 0xDA
	setVCOMDetect      = 0xDB

	// Page addressing: the column pointer advances within a page and
	// never wraps to the next one.
	pageAddressing = 0x02
)

// DefaultAddress is the usual 7-bit address with SA0 pulled low.
const DefaultAddress = 0x3C

// maxTx is the largest I2C write, control byte included.
const maxTx = 32
