// Copyright (c) 2026 bigint contributors
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "testing"

// TestKaratsubaMatchesSchoolbook multiplies operands well above
// karatsubaThreshold and checks the result against an independently
// computed expected product (well past the size schoolbook multiply would
// be used for directly), exercising the recursive split and concurrent
// fan-out.
func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	a, err := Parse(bigOperandA, 10)
	if err != nil {
		t.Fatalf("Parse a: %v", err)
	}
	b, err := Parse(bigOperandB, 10)
	if err != nil {
		t.Fatalf("Parse b: %v", err)
	}
	want, err := Parse(bigProduct, 10)
	if err != nil {
		t.Fatalf("Parse want: %v", err)
	}

	got := Multiply(a, b)
	if !got.Equal(want) {
		t.Fatalf("karatsuba product mismatch (operand sizes %d, %d limbs)", a.size, b.size)
	}

	// Multiplication must be commutative regardless of which operand is
	// larger, exercising the operand-swap in Multiply.
	got2 := Multiply(b, a)
	if !got2.Equal(want) {
		t.Fatalf("Multiply(b, a) != Multiply(a, b)")
	}
}

func TestKaratsubaSingleLimbUsesMultiplyWord(t *testing.T) {
	a := FromI64(123456789)
	b := FromI64(987654321)
	got := karatsubaMultiply(a, b)
	want := a.MultiplyWord(987654321)
	if !got.Equal(want) {
		t.Fatalf("small karatsubaMultiply mismatch: got %s want %s", got.ToText(), want.ToText())
	}
}

const (
	bigOperandA = "609107981198982959691353225255155569874584237075483606588209904723949580713876059901708096435596959754707359390024194140712257711578347148480408829149068788593733133213554193509605497823360930867530409713615783819980095655496859572845303203445822861712196490064991506533899557170609143863095107873817879682857207539646438440638814474258685709454786049074336280457726866510708006320979252554193948381200338748438022407316750371287011893230402044485301159859358532338630782792361678201466737745109584112197128775383625654793186284968375705840769576043205210013741130063286093228098662681663551430017986301519781001187185200955964768680306810847850238524464279829589172048637263939197193609708095462163390569817353585381589390908220412608132087420765615030019775636395387679454159383699240548756526867538822388482114477577917501643068090790126973834940447752697717620572189000201394551076732298926993355832"
	bigOperandB = "647656669826376074964684544929872446674951583417607020007016878209089656615454124696981251910547734117367548818610777645819100802999876600488828448550224651581157928846293883642890559087227682725718084446703371696469708331367313487971109994282985775712483962410186875915662550803524722124596838891770478591856840737726365040677841529586774459901571425054210003031906025643323516585828186271276489473964586226661756053916370781162145187124536212089643329939512873422487126630235446055610030545334231039213667404368858653165091695921051736534233299674696150186114826564634366470750949906297818245714262371481074785175477693301287166265302249821617961704775396856438027938439779520868174107397413110121380308742685402193644895929275514278892864700967240875712042175615663564718757360221063310745714917094674331229213963228229651359144709423427848351011633316395984891890537790272479471604426843506566133053599175584477265370043195654855"
	bigProduct  = "394492846668000192594341504649895639995725243507678227139975169978467046833406591620737030590806311796197772519178181647497133758694544548621364762535784674451318594250194366538007070263392019002674421053467074318615567609631688945789446511765800351846629981096345981629344669757656348099125140334025554095075441450440895800999274013365429505914043299540618462998376323389121551295522026962246171634833279351836311494166041904262997133884467597319572644293462087751031239087433528356657850989653614145872528217079865293252664848401310096618257593852689613342898001953048425829397423318709653224867419723338354124505486515978041715610903722441431004037008877202667548647381058812027513129340050127813519040515748040972222744577193326968540346023141951827492784272940957740120306291434375147547765400277937157800461514638119069139975519713924907366383431009816559683505207860518151603093977003827662961686871129547880445440275032545248004809158201465238325649824617658810891937402838316005153895906995161537390279314416663296604601461298478458982570864064993090336918843835669529599839596537357337864951020394678847580623196680388534810886313335397583193935781335216594896756398576328282818178324395682951374708061910875154384356503348103216605445754571980665225160765712473551808104667436765224387622186132913807750004290640901605008949017137172549731764920700243587473298202011411806218062485358691739243335319096019712650669336594812223450715488419601612806224725474327494038183912792233238184790769679827275953390007433724715721252448396841164599707889956408196729592150704493763947325723060021324399474354255725630550989796942247622180148661867973828645080296790307714543637666200499580019664139186718042600305366786537118268062976577936530537588760646944634045010578218428374827668356639472261276835997088689852382229681397273364360"
)
