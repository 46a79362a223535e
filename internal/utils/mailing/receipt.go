package mailing

import "fmt"

// OrderReceiptBody renders the HTML body of the checkout receipt email.
func OrderReceiptBody(name string, orderID string, cartPoints, discountPoints, feePoints, finalPoints, cashbackPoints int, finalFiat float64) string {
	body := fmt.Sprintf(`
		<h2>Merci %s !</h2>
		<p>Your order <b>%s</b> has been confirmed.</p>
		<table>
			<tr><td>Cart total</td><td>%d pts</td></tr>
			<tr><td>Discount</td><td>-%d pts</td></tr>
			<tr><td>Transaction fee</td><td>+%d pts</td></tr>
			<tr><td><b>Charged</b></td><td><b>%d pts (%.2f FCFA)</b></td></tr>
			<tr><td>Cashback earned</td><td>%d pts</td></tr>
		</table>`,
		name, orderID, cartPoints, discountPoints, feePoints, finalPoints, finalFiat, cashbackPoints)
	return body
}
