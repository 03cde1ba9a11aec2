package cpu

// Op is a decoded CDP1802 operation identifier.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_IDL  = Op(iota) // IDL
	OP_LDN             // LDN
	OP_INC             // INC
	OP_DEC             // DEC
	OP_BR              // BR
	OP_BQ              // BQ
	OP_BZ              // BZ
	OP_BDF             // BDF
	OP_B1              // B1
	OP_B2              // B2
	OP_B3              // B3
	OP_B4              // B4
	OP_SKP             // SKP
	OP_BNQ             // BNQ
	OP_BNZ             // BNZ
	OP_BNF             // BNF
	OP_BN1             // BN1
	OP_BN2             // BN2
	OP_BN3             // BN3
	OP_BN4             // BN4
	OP_LDA             // LDA
	OP_STR             // STR
	OP_IRX             // IRX
	OP_OUT             // OUT
	OP_INP             // INP
	OP_RET             // RET
	OP_DIS             // DIS
	OP_LDXA            // LDXA
	OP_STXD            // STXD
	OP_ADC             // ADC
	OP_SDB             // SDB
	OP_SHRC            // SHRC
	OP_SMB             // SMB
	OP_SAV             // SAV
	OP_MARK            // MARK
	OP_REQ             // REQ
	OP_SEQ             // SEQ
	OP_ADCI            // ADCI
	OP_SDBI            // SDBI
	OP_SHLC            // SHLC
	OP_SMBI            // SMBI
	OP_GLO             // GLO
	OP_GHI             // GHI
	OP_PLO             // PLO
	OP_PHI             // PHI
	OP_LBR             // LBR
	OP_LBQ             // LBQ
	OP_LBZ             // LBZ
	OP_LBDF            // LBDF
	OP_NOP             // NOP
	OP_LSNQ            // LSNQ
	OP_LSNZ            // LSNZ
	OP_LSNF            // LSNF
	OP_LSKP            // LSKP
	OP_LBNQ            // LBNQ
	OP_LBNZ            // LBNZ
	OP_LBNF            // LBNF
	OP_LSIE            // LSIE
	OP_LSQ             // LSQ
	OP_LSZ             // LSZ
	OP_LSDF            // LSDF
	OP_SEP             // SEP
	OP_SEX             // SEX
	OP_LDX             // LDX
	OP_OR              // OR
	OP_AND             // AND
	OP_XOR             // XOR
	OP_ADD             // ADD
	OP_SD              // SD
	OP_SHR             // SHR
	OP_SM              // SM
	OP_LDI             // LDI
	OP_ORI             // ORI
	OP_ANI             // ANI
	OP_XRI             // XRI
	OP_ADI             // ADI
	OP_SDI             // SDI
	OP_SHL             // SHL
	OP_SMI             // SMI
)

// OpKind is the operand class of an operation.
type OpKind int

const (
	KIND_IMPLIED   = OpKind(0) // No operand.
	KIND_REGISTER  = OpKind(1) // Low nibble is a register field.
	KIND_IMMEDIATE = OpKind(2) // One immediate byte follows.
	KIND_BRANCH    = OpKind(3) // One page-local offset byte follows.
	KIND_ADDRESS   = OpKind(4) // A big-endian 16-bit address follows.
)

// opInfo describes the fixed encoding of an operation.
type opInfo struct {
	base   byte // Canonical encoding; register ops fill the low nibble.
	length int  // Encoded length in bytes.
	kind   OpKind
}

// opTable holds the encoding metadata for every operation.
var opTable = map[Op]opInfo{
	OP_IDL:  {0x00, 1, KIND_IMPLIED},
	OP_LDN:  {0x00, 1, KIND_REGISTER},
	OP_INC:  {0x10, 1, KIND_REGISTER},
	OP_DEC:  {0x20, 1, KIND_REGISTER},
	OP_BR:   {0x30, 2, KIND_BRANCH},
	OP_BQ:   {0x31, 2, KIND_BRANCH},
	OP_BZ:   {0x32, 2, KIND_BRANCH},
	OP_BDF:  {0x33, 2, KIND_BRANCH},
	OP_B1:   {0x34, 2, KIND_BRANCH},
	OP_B2:   {0x35, 2, KIND_BRANCH},
	OP_B3:   {0x36, 2, KIND_BRANCH},
	OP_B4:   {0x37, 2, KIND_BRANCH},
	OP_SKP:  {0x38, 2, KIND_BRANCH},
	OP_BNQ:  {0x39, 2, KIND_BRANCH},
	OP_BNZ:  {0x3A, 2, KIND_BRANCH},
	OP_BNF:  {0x3B, 2, KIND_BRANCH},
	OP_BN1:  {0x3C, 2, KIND_BRANCH},
	OP_BN2:  {0x3D, 2, KIND_BRANCH},
	OP_BN3:  {0x3E, 2, KIND_BRANCH},
	OP_BN4:  {0x3F, 2, KIND_BRANCH},
	OP_LDA:  {0x40, 1, KIND_REGISTER},
	OP_STR:  {0x50, 1, KIND_REGISTER},
	OP_IRX:  {0x60, 1, KIND_IMPLIED},
	OP_OUT:  {0x60, 1, KIND_REGISTER},
	OP_INP:  {0x68, 1, KIND_REGISTER},
	OP_RET:  {0x70, 1, KIND_IMPLIED},
	OP_DIS:  {0x71, 1, KIND_IMPLIED},
	OP_LDXA: {0x72, 1, KIND_IMPLIED},
	OP_STXD: {0x73, 1, KIND_IMPLIED},
	OP_ADC:  {0x74, 1, KIND_IMPLIED},
	OP_SDB:  {0x75, 1, KIND_IMPLIED},
	OP_SHRC: {0x76, 1, KIND_IMPLIED},
	OP_SMB:  {0x77, 1, KIND_IMPLIED},
	OP_SAV:  {0x78, 1, KIND_IMPLIED},
	OP_MARK: {0x79, 1, KIND_IMPLIED},
	OP_REQ:  {0x7A, 1, KIND_IMPLIED},
	OP_SEQ:  {0x7B, 1, KIND_IMPLIED},
	OP_ADCI: {0x7C, 2, KIND_IMMEDIATE},
	OP_SDBI: {0x7D, 2, KIND_IMMEDIATE},
	OP_SHLC: {0x7E, 2, KIND_IMMEDIATE},
	OP_SMBI: {0x7F, 2, KIND_IMMEDIATE},
	OP_GLO:  {0x80, 1, KIND_REGISTER},
	OP_GHI:  {0x90, 1, KIND_REGISTER},
	OP_PLO:  {0xA0, 1, KIND_REGISTER},
	OP_PHI:  {0xB0, 1, KIND_REGISTER},
	OP_LBR:  {0xC0, 3, KIND_ADDRESS},
	OP_LBQ:  {0xC1, 3, KIND_ADDRESS},
	OP_LBZ:  {0xC2, 3, KIND_ADDRESS},
	OP_LBDF: {0xC3, 3, KIND_ADDRESS},
	OP_NOP:  {0xC4, 1, KIND_IMPLIED},
	OP_LSNQ: {0xC5, 3, KIND_ADDRESS},
	OP_LSNZ: {0xC6, 3, KIND_ADDRESS},
	OP_LSNF: {0xC7, 3, KIND_ADDRESS},
	OP_LSKP: {0xC8, 3, KIND_ADDRESS},
	OP_LBNQ: {0xC9, 3, KIND_ADDRESS},
	OP_LBNZ: {0xCA, 3, KIND_ADDRESS},
	OP_LBNF: {0xCB, 3, KIND_ADDRESS},
	OP_LSIE: {0xCC, 3, KIND_ADDRESS},
	OP_LSQ:  {0xCD, 3, KIND_ADDRESS},
	OP_LSZ:  {0xCE, 3, KIND_ADDRESS},
	OP_LSDF: {0xCF, 3, KIND_ADDRESS},
	OP_SEP:  {0xD0, 1, KIND_REGISTER},
	OP_SEX:  {0xE0, 1, KIND_REGISTER},
	OP_LDX:  {0xF0, 1, KIND_IMPLIED},
	OP_OR:   {0xF1, 1, KIND_IMPLIED},
	OP_AND:  {0xF2, 1, KIND_IMPLIED},
	OP_XOR:  {0xF3, 1, KIND_IMPLIED},
	OP_ADD:  {0xF4, 1, KIND_IMPLIED},
	OP_SD:   {0xF5, 1, KIND_IMPLIED},
	OP_SHR:  {0xF6, 1, KIND_IMPLIED},
	OP_SM:   {0xF7, 1, KIND_IMPLIED},
	OP_LDI:  {0xF8, 2, KIND_IMMEDIATE},
	OP_ORI:  {0xF9, 2, KIND_IMMEDIATE},
	OP_ANI:  {0xFA, 2, KIND_IMMEDIATE},
	OP_XRI:  {0xFB, 2, KIND_IMMEDIATE},
	OP_ADI:  {0xFC, 2, KIND_IMMEDIATE},
	OP_SDI:  {0xFD, 2, KIND_IMMEDIATE},
	OP_SHL:  {0xFE, 1, KIND_IMPLIED},
	OP_SMI:  {0xFF, 2, KIND_IMMEDIATE},
}

// byteOp maps every byte value to an operation.
var byteOp [256]Op

// mnemonicOp maps canonical mnemonics to operations.
var mnemonicOp = map[string]Op{}

func init() {
	fill := func(lo, hi int, op Op) {
		for b := lo; b <= hi; b++ {
			byteOp[b] = op
		}
	}
	row := func(base int, ops ...Op) {
		for n, op := range ops {
			byteOp[base+n] = op
		}
	}

	fill(0x00, 0x0F, OP_LDN)
	byteOp[0x00] = OP_IDL
	fill(0x10, 0x1F, OP_INC)
	fill(0x20, 0x2F, OP_DEC)
	row(0x30,
		OP_BR, OP_BQ, OP_BZ, OP_BDF, OP_B1, OP_B2, OP_B3, OP_B4,
		OP_SKP, OP_BNQ, OP_BNZ, OP_BNF, OP_BN1, OP_BN2, OP_BN3, OP_BN4)
	fill(0x40, 0x4F, OP_LDA)
	fill(0x50, 0x5F, OP_STR)
	byteOp[0x60] = OP_IRX
	fill(0x61, 0x67, OP_OUT)
	byteOp[0x68] = OP_IRX // undocumented alias, kept from hardware
	fill(0x69, 0x6F, OP_INP)
	row(0x70,
		OP_RET, OP_DIS, OP_LDXA, OP_STXD, OP_ADC, OP_SDB, OP_SHRC, OP_SMB,
		OP_SAV, OP_MARK, OP_REQ, OP_SEQ, OP_ADCI, OP_SDBI, OP_SHLC, OP_SMBI)
	fill(0x80, 0x8F, OP_GLO)
	fill(0x90, 0x9F, OP_GHI)
	fill(0xA0, 0xAF, OP_PLO)
	fill(0xB0, 0xBF, OP_PHI)
	row(0xC0,
		OP_LBR, OP_LBQ, OP_LBZ, OP_LBDF, OP_NOP, OP_LSNQ, OP_LSNZ, OP_LSNF,
		OP_LSKP, OP_LBNQ, OP_LBNZ, OP_LBNF, OP_LSIE, OP_LSQ, OP_LSZ, OP_LSDF)
	fill(0xD0, 0xDF, OP_SEP)
	fill(0xE0, 0xEF, OP_SEX)
	row(0xF0,
		OP_LDX, OP_OR, OP_AND, OP_XOR, OP_ADD, OP_SD, OP_SHR, OP_SM,
		OP_LDI, OP_ORI, OP_ANI, OP_XRI, OP_ADI, OP_SDI, OP_SHL, OP_SMI)

	for op := range opTable {
		mnemonicOp[op.String()] = op
	}
}

// OpForByte decodes a byte into its operation. The mapping is total:
// every byte value decodes to a defined operation.
func OpForByte(b byte) Op {
	return byteOp[b]
}

// Length returns the encoded length of the operation, in bytes (1 to 3).
func (op Op) Length() int {
	return opTable[op].length
}

// Kind returns the operand class of the operation.
func (op Op) Kind() OpKind {
	return opTable[op].kind
}

// Mnemonic returns the canonical assembly name of the operation.
func (op Op) Mnemonic() string {
	return op.String()
}
